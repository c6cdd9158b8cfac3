package report

import (
	"math/rand"
	"testing"

	"holiday-reportbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var normalTemperatures = []string{"35.0", "35.3", "35.6", "35.9", "36.2", "36.5", "36.8"}

func newTestGenerator() *TemperatureGenerator {
	return NewTemperatureGenerator(rand.NewSource(42))
}

func TestTemperatureGenerator_AlwaysInSet(t *testing.T) {
	gen := newTestGenerator()
	seen := map[string]bool{}
	for i := 0; i < 2000; i++ {
		v := gen.Normal()
		require.Contains(t, normalTemperatures, v)
		seen[v] = true
	}
	assert.Len(t, seen, len(normalTemperatures))
}

func TestTemperatureGenerator_Deterministic(t *testing.T) {
	a := NewTemperatureGenerator(rand.NewSource(7))
	b := NewTemperatureGenerator(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Normal(), b.Normal())
	}
}

func TestIsTemperatureText(t *testing.T) {
	assert.True(t, IsTemperatureText("37.5"))
	assert.True(t, IsTemperatureText("36"))
	assert.True(t, IsTemperatureText(" 36.4 "))
	assert.False(t, IsTemperatureText("cough"))
	assert.False(t, IsTemperatureText("37.5度"))
	assert.False(t, IsTemperatureText(""))
}

func TestIsTemperatureText_FullWidth(t *testing.T) {
	assert.True(t, IsTemperatureText("３７.５"))
	assert.True(t, IsTemperatureText("３７．５"))
	assert.True(t, IsTemperatureText("３６"))
	assert.False(t, IsTemperatureText("發燒"))
}

func TestBuildFields_FullWidthTemperature(t *testing.T) {
	f, err := BuildFields(domain.ReportTypeNoonTemperature, []string{"體溫回報", "３７.５"}, newTestGenerator())
	require.NoError(t, err)
	assert.Equal(t, "３７.５", f.BodyTemperature)
	assert.Equal(t, DefaultSymptom, f.Symptom)

	f, err = BuildFields(domain.ReportTypeMorningTemperature, []string{"體溫回報", "３６"}, newTestGenerator())
	require.NoError(t, err)
	assert.Equal(t, "３６", f.BodyTemperature)
	assert.Equal(t, DefaultSymptom, f.Symptom)
}

func TestBuildFields_MorningLocationOnly(t *testing.T) {
	f, err := BuildFields(domain.ReportTypeMorning, []string{"回報", "Library"}, newTestGenerator())
	require.NoError(t, err)
	assert.Equal(t, "Library", f.Location)
	assert.Empty(t, f.LocationAfterTen)
	assert.Contains(t, normalTemperatures, f.BodyTemperature)
	assert.Equal(t, DefaultSymptom, f.Symptom)
}

func TestBuildFields_MorningWithTemperature(t *testing.T) {
	f, err := BuildFields(domain.ReportTypeMorning, []string{"回報", "Library", "37.5"}, newTestGenerator())
	require.NoError(t, err)
	assert.Equal(t, "Library", f.Location)
	assert.Equal(t, "37.5", f.BodyTemperature)
	assert.Equal(t, DefaultSymptom, f.Symptom)
}

func TestBuildFields_MorningWithSymptom(t *testing.T) {
	f, err := BuildFields(domain.ReportTypeMorning, []string{"回報", "Library", "cough"}, newTestGenerator())
	require.NoError(t, err)
	assert.Equal(t, "Library", f.Location)
	assert.Contains(t, normalTemperatures, f.BodyTemperature)
	assert.Equal(t, "cough", f.Symptom)
}

func TestBuildFields_MorningFourPartsNoSniffing(t *testing.T) {
	f, err := BuildFields(domain.ReportTypeMorning, []string{"回報", "Library", "fever", "37.9"}, newTestGenerator())
	require.NoError(t, err)
	assert.Equal(t, "Library", f.Location)
	assert.Equal(t, "fever", f.BodyTemperature)
	assert.Equal(t, "37.9", f.Symptom)
}

func TestBuildFields_Night(t *testing.T) {
	gen := newTestGenerator()

	f, err := BuildFields(domain.ReportTypeNight, []string{"回報", "Home", "Home"}, gen)
	require.NoError(t, err)
	assert.Equal(t, "Home", f.Location)
	assert.Equal(t, "Home", f.LocationAfterTen)
	assert.Contains(t, normalTemperatures, f.BodyTemperature)
	assert.Equal(t, DefaultSymptom, f.Symptom)

	f, err = BuildFields(domain.ReportTypeNight, []string{"回報", "Home", "KTV", "36.1"}, gen)
	require.NoError(t, err)
	assert.Equal(t, "KTV", f.LocationAfterTen)
	assert.Equal(t, "36.1", f.BodyTemperature)

	f, err = BuildFields(domain.ReportTypeNight, []string{"回報", "Home", "KTV", "頭痛"}, gen)
	require.NoError(t, err)
	assert.Contains(t, normalTemperatures, f.BodyTemperature)
	assert.Equal(t, "頭痛", f.Symptom)

	f, err = BuildFields(domain.ReportTypeNight, []string{"回報", "Home", "KTV", "37.8", "頭痛"}, gen)
	require.NoError(t, err)
	assert.Equal(t, "37.8", f.BodyTemperature)
	assert.Equal(t, "頭痛", f.Symptom)
}

func TestBuildFields_TemperatureOnly(t *testing.T) {
	gen := newTestGenerator()

	f, err := BuildFields(domain.ReportTypeNoonTemperature, []string{"體溫回報"}, gen)
	require.NoError(t, err)
	assert.Empty(t, f.Location)
	assert.Contains(t, normalTemperatures, f.BodyTemperature)
	assert.Equal(t, DefaultSymptom, f.Symptom)

	f, err = BuildFields(domain.ReportTypeNoonTemperature, []string{"體溫回報", "36.6"}, gen)
	require.NoError(t, err)
	assert.Equal(t, "36.6", f.BodyTemperature)
	assert.Equal(t, DefaultSymptom, f.Symptom)

	f, err = BuildFields(domain.ReportTypeNoonTemperature, []string{"體溫回報", "流鼻水"}, gen)
	require.NoError(t, err)
	assert.Contains(t, normalTemperatures, f.BodyTemperature)
	assert.Equal(t, "流鼻水", f.Symptom)

	f, err = BuildFields(domain.ReportTypeNoonTemperature, []string{"體溫回報", "37.2", "流鼻水"}, gen)
	require.NoError(t, err)
	assert.Empty(t, f.Location)
	assert.Equal(t, "37.2", f.BodyTemperature)
	assert.Equal(t, "流鼻水", f.Symptom)
}

func TestBuildFields_UnsupportedLength(t *testing.T) {
	gen := newTestGenerator()
	_, err := BuildFields(domain.ReportTypeMorning, []string{"回報"}, gen)
	assert.ErrorIs(t, err, ErrContentMismatch)
	_, err = BuildFields(domain.ReportTypeMorningTemperature, []string{"體溫回報", "a", "b", "c"}, gen)
	assert.ErrorIs(t, err, ErrContentMismatch)
}
