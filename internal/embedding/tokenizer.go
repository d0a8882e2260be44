package embedding

import "strings"

// Tokenizer produces the three BERT-style input tensors for a text
// (input_ids, attention_mask, token_type_ids).
type Tokenizer interface {
	Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64)
}

// SimpleTokenizer hashes whitespace-separated words into token IDs. It
// carries no vocabulary, which is enough to drive an ONNX session; models
// with real vocabularies plug in through the Tokenizer interface.
type SimpleTokenizer struct{}

// Tokenize returns fixed-length tensors padded with zeros to maxTokens,
// laid out as [CLS] words... [SEP]. A maxTokens <= 0 defaults to 256.
func (t *SimpleTokenizer) Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64) {
	if maxTokens <= 0 {
		maxTokens = 256
	}
	words := SplitWords(text)
	limit := maxTokens - 2 // room for [CLS] and [SEP]
	if limit < 0 {
		limit = 0
	}
	if len(words) > limit {
		words = words[:limit]
	}

	inputIDs = make([]int64, maxTokens)
	attentionMask = make([]int64, maxTokens)
	tokenTypeIDs = make([]int64, maxTokens)

	inputIDs[0] = 101 // [CLS]
	attentionMask[0] = 1
	pos := 1
	for _, word := range words {
		inputIDs[pos] = int64(HashString(word) % 30000)
		attentionMask[pos] = 1
		pos++
	}
	if pos < maxTokens {
		inputIDs[pos] = 102 // [SEP]
		attentionMask[pos] = 1
	}
	return inputIDs, attentionMask, tokenTypeIDs
}

// SplitWords splits text on whitespace, dropping empty fields. A text with
// no words returns nil.
func SplitWords(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	return words
}

// HashString maps a word to a stable non-negative integer, used both for
// token IDs and for the hash embedder's word directions.
func HashString(s string) int {
	h := 0
	for _, r := range s {
		h = 31*h + int(r)
	}
	if h < 0 {
		h = -h
	}
	return h
}
