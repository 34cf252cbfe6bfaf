package experiment

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignitiondata/respecth/quantity"
)

func TestDataGroupsShockTube(t *testing.T) {
	check := assert.New(t)

	p := &Properties{}
	require.NoError(t, DataGroups(p, parseTestFile(t, "testfile_st.xml")))

	require.NotNil(t, p.Temperature)
	check.True(p.Temperature.Equal(quantity.Series([]float64{1164.48, 1164.97}, "K")))
	require.NotNil(t, p.IgnitionDelay)
	check.True(p.IgnitionDelay.Equal(quantity.Series([]float64{471.54, 448.03}, "us")))

	check.Nil(p.Pressure)
	check.Nil(p.Time)
	check.Nil(p.Volume)
}

func TestDataGroupsSinglePointCollapses(t *testing.T) {
	check := assert.New(t)

	p := &Properties{}
	require.NoError(t, DataGroups(p, parseTestFile(t, "testfile_st2.xml")))

	require.NotNil(t, p.Temperature)
	check.True(p.Temperature.IsScalar())
	check.True(p.Temperature.Equal(quantity.Scalar(1264.2, "K")))
	require.NotNil(t, p.IgnitionDelay)
	check.True(p.IgnitionDelay.IsScalar())
	check.True(p.IgnitionDelay.Equal(quantity.Scalar(291.57, "us")))
}

func TestDataGroupsRCM(t *testing.T) {
	check := assert.New(t)

	p := &Properties{}
	require.NoError(t, DataGroups(p, parseTestFile(t, "testfile_rcm.xml")))

	// scalar conditions from the first group
	require.NotNil(t, p.Temperature)
	check.True(p.Temperature.Equal(quantity.Scalar(297.4, "K")))
	require.NotNil(t, p.Pressure)
	check.True(p.Pressure.Equal(quantity.Scalar(958, "Torr")))
	require.NotNil(t, p.IgnitionDelay)
	check.True(p.IgnitionDelay.Equal(quantity.Scalar(1, "ms")))

	// volume history from the second group merges into the same
	// properties without any row count conflict
	require.NotNil(t, p.Time)
	check.Equal(97, p.Time.Len())
	check.Equal("s", p.Time.Units())
	for i, v := range p.Time.Values() {
		check.InDelta(float64(i)*1.0e-3, v, 1e-9)
	}

	require.NotNil(t, p.Volume)
	check.Equal(97, p.Volume.Len())
	check.Equal("cm3", p.Volume.Units())
	vols := p.Volume.Values()
	check.InDelta(547.669375, vols[0], 1e-9)
	check.InDelta(49.1943750, vols[30], 1e-9)
	check.InDelta(66.8100309742, vols[96], 1e-9)
}

func TestDataGroupsUnknownColumnIgnored(t *testing.T) {
	input := `<experiment>
  <dataGroup id="dg1">
    <property id="x1" name="temperature" units="K"/>
    <property id="x2" name="uncertainty" units="K"/>
    <dataPoint><x1>1100</x1><x2>15</x2></dataPoint>
  </dataGroup>
</experiment>`
	doc, err := xmlquery.Parse(strings.NewReader(input))
	require.NoError(t, err)

	p := &Properties{}
	require.NoError(t, DataGroups(p, doc))
	require.NotNil(t, p.Temperature)
	assert.True(t, p.Temperature.Equal(quantity.Scalar(1100, "K")))
}

func TestDataGroupsBadValue(t *testing.T) {
	input := `<experiment>
  <dataGroup id="dg1">
    <property id="x1" name="temperature" units="K"/>
    <dataPoint><x1>hot</x1></dataPoint>
  </dataGroup>
</experiment>`
	doc, err := xmlquery.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Error(t, DataGroups(&Properties{}, doc))
}

func TestDataGroupsEmptyDocument(t *testing.T) {
	doc, err := xmlquery.Parse(strings.NewReader(`<experiment/>`))
	require.NoError(t, err)

	p := &Properties{}
	require.NoError(t, DataGroups(p, doc))
	assert.Nil(t, p.Temperature)
	assert.Nil(t, p.Time)
}
