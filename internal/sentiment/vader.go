package sentiment

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1") // keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := html.UnescapeString(tagPattern.ReplaceAllString(string(output), " "))

	return strings.Join(strings.Fields(RemoveLinks(plain)), " ")
}

// VaderScorer scores English text with the VADER lexicon. It needs no
// artifacts, so it is used to run the service locally without a model.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score rescales the VADER compound score from [-1, 1] to [0, 1].
func (v *VaderScorer) Score(_ context.Context, text string) (float64, error) {
	compound := v.analyzer.PolarityScores(ConvertMarkdownToText(text)).Compound
	return (compound + 1) / 2, nil
}
