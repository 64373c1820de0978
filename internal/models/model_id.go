package models

import "fmt"

// ModelID names one of the chat models served by the completion endpoint.
type ModelID string

// AvailableModels is the fixed list offered in the model selector, in display order.
var AvailableModels = []ModelID{
	"ernie-4.0-8k-latest",
	"ernie-4.0-8k-preview",
	"ernie-4.0-8k",
	"ernie-4.0-turbo-8k-latest",
	"ernie-4.0-turbo-8k-preview",
	"ernie-4.0-turbo-8k",
	"ernie-4.0-turbo-128k",
	"ernie-3.5-8k-preview",
	"ernie-3.5-8k",
	"ernie-3.5-128k",
	"ernie-speed-8k",
	"ernie-speed-128k",
	"ernie-speed-pro-128k",
	"ernie-lite-8k",
	"ernie-lite-pro-128k",
	"ernie-tiny-8k",
	"ernie-char-8k",
	"ernie-char-fiction-8k",
	"ernie-novel-8k",
	"deepseek-v3",
	"deepseek-r1",
}

const DefaultModel ModelID = "deepseek-r1"

// Index returns the position of id in AvailableModels, or -1.
func (id ModelID) Index() int {
	for i, m := range AvailableModels {
		if m == id {
			return i
		}
	}
	return -1
}

func (id ModelID) Valid() bool {
	return id.Index() >= 0
}

func ParseModelID(s string) (ModelID, error) {
	id := ModelID(s)
	if !id.Valid() {
		return "", fmt.Errorf("unknown model %q", s)
	}
	return id, nil
}

// ModelAt returns the model at index i clamped into the list bounds.
func ModelAt(i int) ModelID {
	if i < 0 {
		i = 0
	}
	if i >= len(AvailableModels) {
		i = len(AvailableModels) - 1
	}
	return AvailableModels[i]
}
