package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"uni-seeder/internal/model"
	"uni-seeder/internal/utils/errcode"
)

func TestParseCSV_PreservesOrderAndFields(t *testing.T) {
	input := "Country,CountryCode\nTestland,TL\nOtherland,OL\nTestland,TL\n"

	records, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, "Testland", records[0].Get("Country"))
	require.Equal(t, "TL", records[0].Get("CountryCode"))
	require.Equal(t, "Otherland", records[1].Get("Country"))
	require.Equal(t, "Testland", records[2].Get("Country"))
	require.Equal(t, 2, records[0].Line())
	require.Equal(t, 4, records[2].Line())
}

func TestParseCSV_Hygiene(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		assert func(t *testing.T, records []Record)
	}{
		{
			name:  "byte order mark is stripped from the first header",
			input: "\xEF\xBB\xBFname,country\nUni A,Testland\n",
			assert: func(t *testing.T, records []Record) {
				require.Equal(t, "Uni A", records[0].Get("name"))
			},
		},
		{
			name:  "header names are trimmed",
			input: " name , country \nUni A,Testland\n",
			assert: func(t *testing.T, records []Record) {
				require.Equal(t, "Testland", records[0].Get("country"))
			},
		},
		{
			name:  "short rows leave trailing columns absent",
			input: "name,country,city,public\nUni A,Testland\n",
			assert: func(t *testing.T, records []Record) {
				require.NotContains(t, records[0].fields, "city")
				require.Equal(t, "", records[0].Get("city"))
				require.False(t, records[0].Bool("public"))
			},
		},
		{
			name:  "extra cells are ignored and values pass through untouched",
			input: "name,country\n  Uni B ,Nowhere,surplus\n",
			assert: func(t *testing.T, records []Record) {
				require.Equal(t, "  Uni B ", records[0].Get("name"))
				require.Equal(t, "Nowhere", records[0].Get("country"))
			},
		},
		{
			name:  "empty input yields no records",
			input: "",
			assert: func(t *testing.T, records []Record) {
				require.Empty(t, records)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ParseCSV(strings.NewReader(tc.input))
			require.NoError(t, err)
			tc.assert(t, records)
		})
	}
}

func TestRecord_Accessors(t *testing.T) {
	r := Record{line: 2, fields: map[string]string{
		"public":    "TRUE",
		"private":   "no",
		"Latitude":  "52.52",
		"Longitude": "north-ish",
		"Blank":     "  ",
		"NotANum":   "NaN",
		"Infinite":  "-Inf",
		"Overflow":  "1e999",
	}}

	require.True(t, r.Bool("public"))
	require.False(t, r.Bool("private"))
	require.False(t, r.Bool("missing"))

	require.Equal(t, 52.52, r.Number("Latitude"))
	require.Equal(t, "north-ish", r.Number("Longitude"))
	require.Nil(t, r.Number("Blank"))
	require.Nil(t, r.Number("missing"))

	// Non-finite values cannot be encoded as JSON numbers and pass through as text.
	require.Equal(t, "NaN", r.Number("NotANum"))
	require.Equal(t, "-Inf", r.Number("Infinite"))
	require.Equal(t, "1e999", r.Number("Overflow"))
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cityList.csv")
	require.NoError(t, os.WriteFile(path, []byte("City,Country,Latitude,Longitude\nTestville,Testland,1.5,2.5\n"), 0644))

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 2.5, records[0].Number("Longitude"))

	_, err = ReadCSV(filepath.Join(dir, "missing.csv"))
	require.True(t, errors.Is(err, errcode.ErrInputFile))
}

func TestDefaultRoster(t *testing.T) {
	roster := DefaultRoster()
	require.Len(t, roster.Users, 20)
	require.Len(t, roster.Topics, 5)
	require.Len(t, roster.Responses, 7)

	mentors := 0
	for _, u := range roster.Users {
		if u.Role == model.RoleMentor {
			mentors++
		}
	}
	require.Equal(t, 2, mentors)

	// Each call hands out an independent copy.
	roster.Users[0].Name = "changed"
	require.Equal(t, "Alice Johnson", DefaultRoster().Users[0].Name)
}

func TestLoadRoster(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path returns fallback", func(t *testing.T) {
		roster, err := LoadRoster("", DefaultForum())
		require.NoError(t, err)
		require.Len(t, roster.Topics, 6)
	})

	t.Run("file sections override fallback", func(t *testing.T) {
		path := filepath.Join(dir, "roster.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
users:
  - email: mentor@test.edu
    name: Test Mentor
    role: MENTOR
    degree: Physics
topics:
  - title: Only topic
    category: General
    content: Hello
`), 0644))

		roster, err := LoadRoster(path, DefaultRoster())
		require.NoError(t, err)
		require.Equal(t, []UserFixture{{Email: "mentor@test.edu", Name: "Test Mentor", Role: model.RoleMentor, Degree: "Physics"}}, roster.Users)
		require.Len(t, roster.Topics, 1)
		require.Len(t, roster.Responses, 7)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRoster(filepath.Join(dir, "nope.yml"), DefaultRoster())
		require.True(t, errors.Is(err, errcode.ErrFixtureFile))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("users: [oops"), 0644))
		_, err := LoadRoster(path, DefaultRoster())
		require.True(t, errors.Is(err, errcode.ErrFixtureFile))
	})
}
