package subtitle

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/models"
)

func seg(text string, start, end float64) models.Segment {
	return models.Segment{Start: start, End: end, Text: text}
}

func TestFormatSRT_SingleSegment(t *testing.T) {
	out := FormatSRT([]models.Segment{seg("hi", 61.5, 62.001)})
	assert.Equal(t, "1\n00:01:01,500 --> 00:01:02,001\nhi\n", out)
}

func TestFormatSRT_MultipleSegments(t *testing.T) {
	out := FormatSRT([]models.Segment{
		seg("first", 0, 1.25),
		seg("second", 1.25, 3661.75),
	})

	want := "1\n00:00:00,000 --> 00:00:01,250\nfirst\n" +
		"\n" +
		"2\n00:00:01,250 --> 01:01:01,750\nsecond\n"
	assert.Equal(t, want, out)
}

func TestFormatVTT(t *testing.T) {
	out := FormatVTT([]models.Segment{
		seg("first", 0, 1.25),
		seg("second", 1.25, 2.5),
	})

	assert.True(t, strings.HasPrefix(out, "WEBVTT\n\n"))
	assert.Contains(t, out, "00:00:00.000 --> 00:00:01.250\nfirst\n")
	assert.Contains(t, out, "00:00:01.250 --> 00:00:02.500\nsecond\n")
}

func TestFormatSRT_Empty(t *testing.T) {
	assert.Equal(t, "", FormatSRT(nil))
}

func TestFormatVTT_Empty(t *testing.T) {
	assert.Equal(t, "WEBVTT\n\n", FormatVTT(nil))
}

func TestTimestampMillisecondPrecision(t *testing.T) {
	// Values whose float representation sits just under the millisecond
	// boundary must not collapse to the previous millisecond.
	tests := []struct {
		seconds float64
		want    string
	}{
		{62.001, "00:01:02,001"},
		{0, "00:00:00,000"},
		{0.999, "00:00:00,999"},
		{3599.5, "00:59:59,500"},
		{3600, "01:00:00,000"},
		{7322.07, "02:02:02,070"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, srtTimestamp(tc.seconds), "srtTimestamp(%v)", tc.seconds)
	}
}

func TestTimestampNegativeClamped(t *testing.T) {
	assert.Equal(t, "00:00:00,000", srtTimestamp(-0.5))
}

func TestSRTRoundTrip(t *testing.T) {
	segments := []models.Segment{
		seg("Hello大家好,我是老高", 0, 4.0),
		seg("那就是", 4.5, 5.5),
		seg("line one\nline two", 6.001, 7.999),
	}

	parsed, err := ParseSRT(FormatSRT(segments))
	require.NoError(t, err)
	require.Len(t, parsed, len(segments))

	for i := range segments {
		assert.Equal(t, segments[i].Text, parsed[i].Text)
		assert.LessOrEqual(t, math.Abs(segments[i].Start-parsed[i].Start), 0.001)
		assert.LessOrEqual(t, math.Abs(segments[i].End-parsed[i].End), 0.001)
	}
}

func TestVTTRoundTrip(t *testing.T) {
	segments := []models.Segment{
		seg("first", 0, 1.25),
		seg("第二段。", 1.25, 3661.75),
	}

	parsed, err := ParseVTT(FormatVTT(segments))
	require.NoError(t, err)
	require.Len(t, parsed, len(segments))

	for i := range segments {
		assert.Equal(t, segments[i].Text, parsed[i].Text)
		assert.LessOrEqual(t, math.Abs(segments[i].Start-parsed[i].Start), 0.001)
		assert.LessOrEqual(t, math.Abs(segments[i].End-parsed[i].End), 0.001)
	}
}

func TestParseVTT_RequiresHeader(t *testing.T) {
	_, err := ParseVTT("00:00:00.000 --> 00:00:01.000\nhi\n")
	assert.Error(t, err)
}

func TestParseSRT_Malformed(t *testing.T) {
	_, err := ParseSRT("1\nnot a timeline\ntext\n")
	assert.Error(t, err)
}
