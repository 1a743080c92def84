package forecast_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"stockforecast/internal/forecast"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("fixtures/" + name)
	require.NoError(t, err)
	return string(b)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	fragments, err := forecast.Extract(readFixture(t, "forecast_t.html"))
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	require.Contains(t, fragments[0], "have a median target of 34.50")
	require.Equal(t, "Analyst recommendations are updated daily.", fragments[1])
}

func TestExtract_SymbolNotFoundWinsOverContent(t *testing.T) {
	t.Parallel()

	// The fixture also carries a valid forecasts tab.
	fragments, err := forecast.Extract(readFixture(t, "symbol_not_found.html"))
	require.ErrorIs(t, err, forecast.ErrSymbolNotFound)
	require.EqualError(t, err, "symbol could not be found")
	require.Nil(t, fragments)
}

func TestExtract_SymbolNotFoundAnyCase(t *testing.T) {
	t.Parallel()

	for _, heading := range []string{"SYMBOL NOT FOUND", "symbol not found", "Symbol Not Found", " Symbol not Found\n", " Symbol Not Found "} {
		page := `<html><body><h1>Some Corp</h1><h1>` + heading + `</h1><div id="wsod_forecasts"><p>x</p></div></body></html>`
		_, err := forecast.Extract(page)
		require.ErrorIsf(t, err, forecast.ErrSymbolNotFound, "heading %q", heading)
	}
}

func TestExtract_OnlyH1Counts(t *testing.T) {
	t.Parallel()

	page := `<html><body><h2>Symbol Not Found</h2><div id="wsod_forecasts"><p>one</p></div></body></html>`
	fragments, err := forecast.Extract(page)
	require.NoError(t, err)
	require.Equal(t, []string{"one"}, fragments)
}

func TestExtract_MissingForecastsTab(t *testing.T) {
	t.Parallel()

	_, err := forecast.Extract(readFixture(t, "no_forecasts_tab.html"))
	require.ErrorIs(t, err, forecast.ErrParse)
	require.EqualError(t, err, "page could not be parsed")

	_, err = forecast.Extract("")
	require.ErrorIs(t, err, forecast.ErrParse)
}

func TestExtract_EmptyTab(t *testing.T) {
	t.Parallel()

	fragments, err := forecast.Extract(`<div id="wsod_forecasts"><span>no paragraphs</span></div>`)
	require.NoError(t, err)
	require.Empty(t, fragments)
}

func TestExtract_NestedParagraphsInOrder(t *testing.T) {
	t.Parallel()

	page := `<p>outside</p>
<div id="wsod_forecasts">
  <p>first</p>
  <div><p>second <b>bold</b></p></div>
  <p>third</p>
</div>
<p>after</p>`
	fragments, err := forecast.Extract(page)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second bold", "third"}, fragments)
}
