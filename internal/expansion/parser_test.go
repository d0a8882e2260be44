package expansion

import (
	"reflect"
	"testing"
)

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		n       int
		want    []string
	}{
		{
			name: "numbered format",
			content: "Variant 1: How does climate change affect coastal cities?\n" +
				"Variant 2: What are the urban impacts of rising seas?\n" +
				"Variant 3: Coastal flooding risks from global warming",
			n: 3,
			want: []string{
				"How does climate change affect coastal cities?",
				"What are the urban impacts of rising seas?",
				"Coastal flooding risks from global warming",
			},
		},
		{
			name: "strips quotes from numbered lines",
			content: "Variant 1: \"What drives ocean acidification?\"\n" +
				"Variant 2: 'How do oceans absorb carbon dioxide?'\n" +
				"Variant 3: Chemical changes in seawater from emissions",
			n: 3,
			want: []string{
				"What drives ocean acidification?",
				"How do oceans absorb carbon dioxide?",
				"Chemical changes in seawater from emissions",
			},
		},
		{
			name: "bare lines longer than twenty characters",
			content: "How does deforestation accelerate warming?\n" +
				"What role do forests play in the carbon cycle?",
			n: 3,
			want: []string{
				"How does deforestation accelerate warming?",
				"What role do forests play in the carbon cycle?",
			},
		},
		{
			name: "bullet prefix trimmed from bare lines",
			content: "- What are the long-term effects of permafrost thaw?\n" +
				"- How much methane is stored in frozen ground?",
			n: 3,
			want: []string{
				"What are the long-term effects of permafrost thaw?",
				"How much methane is stored in frozen ground?",
			},
		},
		{
			name: "skips original restatement and short lines",
			content: "Original Query: climate change impacts on agriculture\n" +
				"Too short\n" +
				"How will crop yields respond to higher temperatures?",
			n:    3,
			want: []string{"How will crop yields respond to higher temperatures?"},
		},
		{
			name: "deduplicates bare lines",
			content: "What causes glacial retreat worldwide?\n" +
				"What causes glacial retreat worldwide?\n" +
				"How fast are mountain glaciers shrinking?",
			n: 3,
			want: []string{
				"What causes glacial retreat worldwide?",
				"How fast are mountain glaciers shrinking?",
			},
		},
		{
			name: "caps at requested count",
			content: "Variant 1: First variant about emissions\n" +
				"Variant 2: Second variant about emissions\n" +
				"Variant 3: Third variant about emissions\n" +
				"Variant 4: Fourth variant about emissions",
			n: 3,
			want: []string{
				"First variant about emissions",
				"Second variant about emissions",
				"Third variant about emissions",
			},
		},
		{
			name:    "numbered line without colon ignored",
			content: "Variant one has no colon separator here",
			n:       3,
			want:    []string{},
		},
		{
			name:    "blank remainder after colon ignored",
			content: "Variant 1:   \nVariant 2: A real variant about drought patterns",
			n:       3,
			want:    []string{"A real variant about drought patterns"},
		},
		{
			name:    "empty content",
			content: "",
			n:       3,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseVariants(tt.content, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseVariants() = %q, want %q", got, tt.want)
			}
		})
	}
}
