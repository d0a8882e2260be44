// Package corpus provides the built-in sample document collection and
// loading of document corpora from directories.
package corpus

import "github.com/hyperjump/hirogeru/internal/models"

// SampleDocuments returns the built-in IPCC climate corpus. Document IDs are
// positional and double as vector index labels.
func SampleDocuments() []models.Document {
	texts := []string{
		"Climate change represents an urgent and potentially irreversible threat to human societies and the planet. The Intergovernmental Panel on Climate Change (IPCC) provides comprehensive assessments of climate science.",

		"Key risks from climate change include increased heat-related mortality, food insecurity from crop failures, water scarcity in drought-prone regions, and damage to critical infrastructure from extreme weather events.",

		"Sea level rise poses significant threats to coastal communities and small island nations. Projections indicate global mean sea level could rise by 0.43 to 0.84 meters by 2100 under moderate emission scenarios.",

		"Climate feedback mechanisms, such as ice-albedo feedback and permafrost thawing, can accelerate warming. As ice melts, darker surfaces absorb more solar radiation, creating a self-reinforcing cycle.",

		"Adaptation strategies must be implemented alongside mitigation efforts. These include building resilient infrastructure, developing drought-resistant crops, and establishing early warning systems for extreme weather.",

		"The primary driver of observed warming since the mid-20th century is anthropogenic greenhouse gas emissions, particularly CO2 from fossil fuel combustion and deforestation.",

		"Ecosystem disruption from climate change threatens biodiversity globally. Coral reefs face bleaching events from ocean warming, while shifting temperature zones force species migration and habitat loss.",

		"Economic impacts of climate change include reduced agricultural productivity, increased costs for coastal protection, higher insurance premiums, and disrupted supply chains from extreme weather events.",

		"Climate tipping points represent thresholds beyond which changes become irreversible on human timescales. Examples include Amazon rainforest dieback, Greenland ice sheet collapse, and Atlantic meridional overturning circulation shutdown.",

		"Mitigation requires rapid decarbonization across all sectors: transitioning to renewable energy, improving energy efficiency, electrifying transportation, and implementing carbon capture technologies.",

		"Social vulnerability to climate impacts varies by geography, income, and demographic factors. Low-income communities and developing nations face disproportionate risks despite contributing least to historical emissions.",

		"Climate models project temperature increases of 1.5°C to 4.5°C by 2100 depending on emission pathways. Limiting warming to 1.5°C requires achieving net-zero CO2 emissions by 2050.",

		"Ocean acidification from absorbed CO2 threatens marine ecosystems. Increasing acidity reduces calcium carbonate availability, impacting shellfish, corals, and organisms with calcium-based structures.",

		"Extreme weather event attribution science has advanced significantly, allowing researchers to quantify the influence of climate change on specific hurricanes, heat waves, and droughts.",

		"Climate justice principles emphasize that those least responsible for emissions face the greatest impacts. International climate agreements must address equity, capacity building, and technology transfer to developing nations.",
	}

	docs := make([]models.Document, len(texts))
	for i, text := range texts {
		docs[i] = models.Document{ID: i, Text: text, Source: "sample"}
	}
	return docs
}
