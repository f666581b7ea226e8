package preview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/domain"
)

type fakeModel struct {
	response string
	err      error
	gotUser  string
}

func (f *fakeModel) GenerateJSON(_ context.Context, _, user string) (string, error) {
	f.gotUser = user

	return f.response, f.err
}

func TestGenerate(t *testing.T) {
	model := &fakeModel{response: `{
		"pageTitle": "CabbageSEO: Your Brand in AI Answers",
		"metaDescription": "See how ChatGPT, Gemini and Perplexity describe your brand.",
		"outline": ["Why AI visibility matters", "How scans work", "", "Pricing"]
	}`}

	site := &domain.SiteContext{Title: "CabbageSEO", Category: "software"}
	preview, err := New(model).Generate(context.Background(), "cabbageseo.com", "AI visibility tracking", site)
	require.NoError(t, err)
	require.Equal(t, "CabbageSEO: Your Brand in AI Answers", preview.PageTitle)
	require.Equal(t, "See how ChatGPT, Gemini and Perplexity describe your brand.", preview.MetaDescription)
	require.Equal(t, []string{"Why AI visibility matters", "How scans work", "Pricing"}, preview.Outline)

	require.Contains(t, model.gotUser, "Domain: cabbageseo.com")
	require.Contains(t, model.gotUser, "Business: AI visibility tracking")
	require.Contains(t, model.gotUser, "Current title: CabbageSEO")
	require.Contains(t, model.gotUser, "Category: software")
}

func TestGenerate_OutlineCap(t *testing.T) {
	model := &fakeModel{response: `{
		"pageTitle": "title",
		"outline": ["a", "b", "c", "d", "e", "f", "g"]
	}`}

	preview, err := New(model).Generate(context.Background(), "example.com", "", nil)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, preview.Outline)
}

func TestGenerate_MissingTitle(t *testing.T) {
	model := &fakeModel{response: `{"pageTitle": "  ", "metaDescription": "desc"}`}

	_, err := New(model).Generate(context.Background(), "example.com", "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "without a page title")
}

func TestGenerate_MalformedAnswer(t *testing.T) {
	model := &fakeModel{response: "certainly, here is the preview"}

	_, err := New(model).Generate(context.Background(), "example.com", "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not decode preview")
}

func TestGenerate_ModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("model unavailable")}

	_, err := New(model).Generate(context.Background(), "example.com", "", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not generate preview")
}
