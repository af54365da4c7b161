package domain_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/promptrelay/internal/domain"
)

func TestSplit_Runes(t *testing.T) {
	t.Run("should split 4500 characters into 2000, 2000, 500", func(t *testing.T) {
		text := strings.Repeat("a", 4500)

		segments, err := domain.Split(text, 2000, domain.UnitRunes)

		require.NoError(t, err)
		require.Len(t, segments, 3)
		require.Len(t, segments[0], 2000)
		require.Len(t, segments[1], 2000)
		require.Len(t, segments[2], 500)
		require.Equal(t, text, strings.Join(segments, ""))
	})

	t.Run("should return short text unchanged", func(t *testing.T) {
		segments, err := domain.Split("hello", 2000, domain.UnitRunes)

		require.NoError(t, err)
		require.Equal(t, []string{"hello"}, segments)
	})

	t.Run("should return one empty segment for empty text", func(t *testing.T) {
		segments, err := domain.Split("", 2000, domain.UnitRunes)

		require.NoError(t, err)
		require.Equal(t, []string{""}, segments)
	})

	t.Run("should keep text of exactly the limit in one segment", func(t *testing.T) {
		text := strings.Repeat("b", 2000)

		segments, err := domain.Split(text, 2000, domain.UnitRunes)

		require.NoError(t, err)
		require.Len(t, segments, 1)
	})

	t.Run("should preserve newlines", func(t *testing.T) {
		text := "line one\nline two\n\nline three\n"

		segments, err := domain.Split(text, 4, domain.UnitRunes)

		require.NoError(t, err)
		require.Equal(t, text, strings.Join(segments, ""))
	})

	t.Run("should count multi-byte characters as one unit", func(t *testing.T) {
		text := strings.Repeat("é", 5)

		segments, err := domain.Split(text, 2, domain.UnitRunes)

		require.NoError(t, err)
		require.Equal(t, []string{"éé", "éé", "é"}, segments)
	})

	t.Run("should reject a limit below one", func(t *testing.T) {
		segments, err := domain.Split("abc", 0, domain.UnitRunes)

		require.ErrorIs(t, err, domain.ErrInvalidLimit)
		require.Nil(t, segments)
	})
}

func TestSplit_Properties(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"hello, world",
		strings.Repeat("0123456789", 37),
		"Xin chào! Tôi là trợ lý của bạn. 😀🎉 日本語のテキスト",
		strings.Repeat("👍🏽 ", 40),
	}
	limits := []int{1, 2, 3, 7, 64, 2000}

	for _, text := range inputs {
		for _, limit := range limits {
			segments, err := domain.Split(text, limit, domain.UnitRunes)
			require.NoError(t, err)

			require.Equal(t, text, strings.Join(segments, ""))

			n := utf8.RuneCountInString(text)
			expected := (n + limit - 1) / limit
			if n == 0 {
				expected = 1
			}
			require.Len(t, segments, expected)

			for _, s := range segments {
				require.LessOrEqual(t, utf8.RuneCountInString(s), limit)
				if n > 0 {
					require.NotEmpty(t, s)
				}
			}
		}
	}
}

func TestSplit_OtherUnits(t *testing.T) {
	text := "ab😀cd😀e"

	t.Run("bytes never divide a code point", func(t *testing.T) {
		segments, err := domain.Split(text, 5, domain.UnitBytes)

		require.NoError(t, err)
		require.Equal(t, text, strings.Join(segments, ""))
		for _, s := range segments {
			require.LessOrEqual(t, len(s), 5)
			require.True(t, utf8.ValidString(s))
		}
	})

	t.Run("bytes require room for one code point", func(t *testing.T) {
		_, err := domain.Split(text, 3, domain.UnitBytes)

		require.ErrorIs(t, err, domain.ErrInvalidLimit)
	})

	t.Run("unit names are case-insensitive", func(t *testing.T) {
		_, err := domain.Split("éééé", 2, domain.Unit("BYTES"))
		require.ErrorIs(t, err, domain.ErrInvalidLimit)

		chunker, err := domain.NewChunker(4, domain.Unit("Bytes"))
		require.NoError(t, err)
		require.Equal(t, domain.UnitBytes, chunker.Unit())

		segments := chunker.Split("ééééé")
		require.Equal(t, []string{"éé", "éé", "é"}, segments)
		for _, s := range segments {
			require.LessOrEqual(t, len(s), 4)
		}
	})

	t.Run("utf16 counts astral characters as two units", func(t *testing.T) {
		require.Equal(t, 9, domain.Length(text, domain.UnitUTF16))

		segments, err := domain.Split(text, 3, domain.UnitUTF16)

		require.NoError(t, err)
		require.Equal(t, []string{"ab", "😀c", "d😀", "e"}, segments)
	})

	t.Run("graphemes keep clusters together", func(t *testing.T) {
		flags := "🇻🇳🇯🇵🇫🇷"

		require.Equal(t, 3, domain.Length(flags, domain.UnitGraphemes))

		segments, err := domain.Split(flags, 2, domain.UnitGraphemes)

		require.NoError(t, err)
		require.Equal(t, []string{"🇻🇳🇯🇵", "🇫🇷"}, segments)
	})
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Unit
		wantErr  bool
	}{
		{input: "", expected: domain.UnitRunes},
		{input: "runes", expected: domain.UnitRunes},
		{input: "BYTES", expected: domain.UnitBytes},
		{input: " utf16 ", expected: domain.UnitUTF16},
		{input: "graphemes", expected: domain.UnitGraphemes},
		{input: "words", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			unit, err := domain.ParseUnit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, unit)
		})
	}
}
