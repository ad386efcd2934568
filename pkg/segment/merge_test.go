package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openscribe/scribe/pkg/models"
)

func seg(text string, start, end float64) models.Segment {
	return models.Segment{Start: start, End: end, Text: text}
}

func spokenSeg(text string, start, end float64, speaker string) models.Segment {
	return models.Segment{Start: start, End: end, Text: text, Speaker: &speaker}
}

func TestMerge_MixedScriptFragments(t *testing.T) {
	chunks := []models.Segment{
		seg("Hello", 0, 1.5),
		seg("大家好,", 0.3, 1.8),
		seg("我是 老", 0.56, 2.06),
		seg("高 咱", 0.76, 2.26),
		seg("们 今天", 0.98, 2.48),
		seg("来 讲", 1.28, 2.78),
		seg("一个话题。", 2.8, 4.0),
		seg("那就是", 4.5, 5.5),
	}

	merged := Merge(chunks)
	require.Len(t, merged, 2)

	assert.Equal(t, "Hello大家好,我是老高咱们今天来讲一个话题。", merged[0].Text)
	assert.Equal(t, 0.0, merged[0].Start)
	assert.Equal(t, 4.0, merged[0].End)

	assert.Equal(t, "那就是", merged[1].Text)
	assert.Equal(t, 4.5, merged[1].Start)
	assert.Equal(t, 5.5, merged[1].End)
}

func TestMerge_SpeakerBoundary(t *testing.T) {
	chunks := []models.Segment{
		spokenSeg("so I was", 0, 0.8, "Speaker 0"),
		spokenSeg("thinking about it", 0.9, 1.6, "Speaker 0"),
		spokenSeg("and then", 1.7, 2.2, "Speaker 1"),
	}

	merged := Merge(chunks)
	require.Len(t, merged, 2)
	assert.Equal(t, "so I was thinking about it", merged[0].Text)
	assert.Equal(t, "Speaker 0", merged[0].SpeakerOrEmpty())
	assert.Equal(t, "and then", merged[1].Text)
	assert.Equal(t, "Speaker 1", merged[1].SpeakerOrEmpty())
}

func TestMerge_GapBoundary(t *testing.T) {
	chunks := []models.Segment{
		seg("first part", 0, 1.0),
		seg("still first", 1.2, 2.0),
		// 2.0s gap exceeds the 1.5s threshold
		seg("second part", 4.0, 5.0),
	}

	merged := Merge(chunks)
	require.Len(t, merged, 2)
	assert.Equal(t, "first part still first", merged[0].Text)
	assert.Equal(t, 2.0, merged[0].End)
	assert.Equal(t, "second part", merged[1].Text)
}

func TestMerge_TerminalPunctuationBoundary(t *testing.T) {
	chunks := []models.Segment{
		seg("That is done.", 0, 1.0),
		seg("Next sentence", 1.1, 2.0),
	}

	merged := Merge(chunks)
	require.Len(t, merged, 2)
}

func TestMerge_LengthBoundary(t *testing.T) {
	long := strings.Repeat("a", 150)
	chunks := []models.Segment{
		seg(long, 0, 1.0),
		seg(long, 1.1, 2.0),
	}

	// Joined length would be 301 runes (with the space), over the 200 cap.
	merged := Merge(chunks)
	require.Len(t, merged, 2)
}

func TestMerge_DropsEmptyChunks(t *testing.T) {
	chunks := []models.Segment{
		seg("  ", 0, 0.5),
		seg("hello", 0.5, 1.0),
		seg("", 1.0, 1.2),
	}

	merged := Merge(chunks)
	require.Len(t, merged, 1)
	assert.Equal(t, "hello", merged[0].Text)
	assert.Equal(t, 0.5, merged[0].Start)
}

func TestMerge_Idempotent(t *testing.T) {
	inputs := [][]models.Segment{
		{
			seg("Hello", 0, 1.5),
			seg("大家好,", 0.3, 1.8),
			seg("我是 老", 0.56, 2.06),
			seg("一个话题。", 2.8, 4.0),
			seg("那就是", 4.5, 5.5),
		},
		{
			spokenSeg("alpha", 0, 1, "Speaker 0"),
			spokenSeg("beta", 1.2, 2, "Speaker 1"),
			spokenSeg("gamma.", 2.1, 3, "Speaker 1"),
			spokenSeg("delta", 3.1, 4, "Speaker 1"),
		},
		{
			seg(strings.Repeat("x", 150), 0, 1),
			seg(strings.Repeat("y", 150), 1.1, 2),
		},
	}

	for _, chunks := range inputs {
		once := Merge(chunks)
		twice := Merge(once)
		assert.Equal(t, once, twice)
	}
}

func TestSmartJoin(t *testing.T) {
	tests := []struct {
		left, right, want string
	}{
		{"Hello", "world", "Hello world"},
		{"你好", "世界", "你好世界"},
		{"Hello", "大家好", "Hello大家好"},
		{"你好,", "我是", "你好,我是"},
		{"", "world", "world"},
		{"Hello", "", "Hello"},
		{"v2", "beta", "v2 beta"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SmartJoin(tc.left, tc.right), "SmartJoin(%q, %q)", tc.left, tc.right)
	}
}

func TestCleanChineseSpacing(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"我是 老高", "我是老高"},
		{"我 是 老 高", "我是老高"},
		{"你好 ， 世界", "你好，世界"},
		{"Hello world", "Hello world"},
		{"中文 english 混排", "中文 english 混排"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CleanChineseSpacing(tc.in), "CleanChineseSpacing(%q)", tc.in)
	}
}

func TestCleanChineseSpacing_Idempotent(t *testing.T) {
	inputs := []string{
		"我 是 老 高 咱 们",
		"一个 话题 。 那就是",
		"mixed 中文 and english",
	}
	for _, in := range inputs {
		once := CleanChineseSpacing(in)
		assert.Equal(t, once, CleanChineseSpacing(once))
	}
}
