package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saltline/surfcast/internal/conditions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buoyTable = `#YY  MM DD hh mm WDIR WSPD GST  WVHT   DPD   APD MWD   PRES  ATMP  WTMP  DEWP  VIS PTDY  TIDE
#yr  mo dy hr mn degT m/s  m/s     m   sec   sec degT   hPa  degC  degC  degC  nmi hPa    ft
2025 08 31 12 00 220  5.0  7.0   1.5    MM    MM  MM  1015.0  28.0  27.5    MM   MM   MM    MM
2025 08 31 11 50 210  4.5  6.0   1.4    MM    MM  MM  1015.2  28.1  27.5    MM   MM   MM    MM
`

func TestNDBCFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(buoyTable))
	}))
	defer srv.Close()

	s := NewNDBC(srv.Client(), "41110")
	s.url = srv.URL

	p, err := s.Fetch(context.Background())
	require.NoError(t, err)

	// 5.0 m/s -> 9.7 kt, gust 7.0 m/s -> 13.6 kt, 1.5 m -> 4.9 ft.
	assert.Equal(t, &conditions.Range{Low: 9.7, High: 13.6}, p.Wind)
	assert.Equal(t, &conditions.Range{Low: 4.9, High: 4.9}, p.Waves)
	assert.Equal(t, "SW", p.WindDir)
}

func TestParseBuoyTableScansPastMissing(t *testing.T) {
	table := `#YY  MM DD hh mm WDIR WSPD GST  WVHT
#yr  mo dy hr mn degT m/s  m/s     m
2025 08 31 12 00  MM   MM   MM    MM
2025 08 31 11 50 180  3.0   MM   1.0
`
	p := parseBuoyTable(table)

	require.NotNil(t, p.Wind)
	// Missing gust falls back to the sustained speed.
	assert.Equal(t, conditions.Range{Low: 5.8, High: 5.8}, *p.Wind)
	assert.Equal(t, "S", p.WindDir)
	require.NotNil(t, p.Waves)
	assert.Equal(t, conditions.Range{Low: 3.3, High: 3.3}, *p.Waves)
}

func TestParseBuoyTableTooShort(t *testing.T) {
	p := parseBuoyTable("#YY MM\n#yr mo\n")
	assert.Nil(t, p.Wind)
	assert.Nil(t, p.Waves)
	assert.Empty(t, p.WindDir)
}

func TestParseBuoyTableSkipsShortRows(t *testing.T) {
	table := `#YY  MM DD hh mm WDIR WSPD GST  WVHT
#yr  mo dy hr mn degT m/s  m/s     m
2025 08 31
2025 08 31 11 50 090  2.0  2.5   0.5
`
	p := parseBuoyTable(table)

	require.NotNil(t, p.Wind)
	assert.Equal(t, conditions.Range{Low: 3.9, High: 4.9}, *p.Wind)
	assert.Equal(t, "E", p.WindDir)
}
