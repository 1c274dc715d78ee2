package bis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<message:StructureSpecificData>
  <DataSet>
    <Series BORROWERS_CTY="US" FREQ="Q">
      <Obs TIME_PERIOD="2020-Q1" OBS_VALUE="100.5"/>
      <Obs TIME_PERIOD="2020-Q2" OBS_VALUE="102"/>
    </Series>
    <Series BORROWERS_CTY="JP" FREQ="Q">
      <Obs TIME_PERIOD="2020-Q1" OBS_VALUE="50"/>
      <Obs TIME_PERIOD="2020-Q2" OBS_VALUE="51.25"/>
    </Series>
  </DataSet>
</message:StructureSpecificData>`

func TestParseObservationsDocumentOrder(t *testing.T) {
	obs, err := ParseObservations(sampleXML)
	require.NoError(t, err)
	require.Len(t, obs, 4)

	assert.Equal(t, "US", obs[0].SeriesKey)
	assert.Equal(t, "2020-Q1", obs[0].Period)
	require.NotNil(t, obs[0].Value)
	assert.Equal(t, "100.5", obs[0].Value.String())

	assert.Equal(t, "US", obs[1].SeriesKey)
	assert.Equal(t, "JP", obs[2].SeriesKey)
	assert.Equal(t, "JP", obs[3].SeriesKey)
	assert.Equal(t, "2020-Q2", obs[3].Period)
}

func TestParseObservationsCountIsSeriesTimesObs(t *testing.T) {
	// 2 series x 2 observations each
	obs, err := ParseObservations(sampleXML)
	require.NoError(t, err)
	assert.Len(t, obs, 4)
}

func TestParseObservationsMissingValue(t *testing.T) {
	xmlText := `<DataSet>
	  <Series BORROWERS_CTY="US">
	    <Obs TIME_PERIOD="2020-Q1"/>
	    <Obs TIME_PERIOD="2020-Q2" OBS_VALUE=""/>
	    <Obs TIME_PERIOD="2020-Q3" OBS_VALUE="NaN-ish"/>
	    <Obs TIME_PERIOD="2020-Q4" OBS_VALUE="104"/>
	  </Series>
	</DataSet>`

	obs, err := ParseObservations(xmlText)
	require.NoError(t, err)
	require.Len(t, obs, 4)

	assert.Nil(t, obs[0].Value)
	assert.Nil(t, obs[1].Value)
	assert.Nil(t, obs[2].Value)
	require.NotNil(t, obs[3].Value)
	assert.Equal(t, "104", obs[3].Value.String())
}

func TestParseObservationsMissingSeriesKey(t *testing.T) {
	xmlText := `<DataSet>
	  <Series FREQ="Q">
	    <Obs TIME_PERIOD="2020-Q1" OBS_VALUE="1"/>
	  </Series>
	</DataSet>`

	obs, err := ParseObservations(xmlText)
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, UnknownSeriesKey, obs[0].SeriesKey)
}

func TestParseObservationsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unclosed element", in: `<DataSet><Series BORROWERS_CTY="US">`},
		{name: "mismatched tags", in: `<DataSet></Other>`},
		{name: "plain text", in: `not xml at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseObservations(tt.in)
			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseObservationsEmptyDocument(t *testing.T) {
	obs, err := ParseObservations(`<DataSet></DataSet>`)
	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestParseObservationsLatin1Charset(t *testing.T) {
	xmlText := `<?xml version="1.0" encoding="ISO-8859-1"?>
	<DataSet>
	  <Series BORROWERS_CTY="FR">
	    <Obs TIME_PERIOD="2020-Q1" OBS_VALUE="3.5"/>
	  </Series>
	</DataSet>`

	obs, err := ParseObservations(xmlText)
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, "FR", obs[0].SeriesKey)
}
