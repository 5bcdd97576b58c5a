package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "peoplestats/internal/platform/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const peopleCSV = `name,siblings,favourite_food,birth_timezone,birth_timestamp
Ada,1,Pizza,America/Los_Angeles,1609479000000
Bo,2,Sushi,Asia/Tokyo,638920800000
Cy,2,Pizza,+05:30,489009600000
Di,0,Tacos,Europe/London,-611582400000
Ed,3,Sushi,UTC,949363200000
`

const wantReport = "Average siblings: 2\n" +
	"Three favourite foods: Pizza(2), Sushi(2), Tacos(1)\n" +
	"Birth Months: January(0), February(1), March(0), April(1), May(0), June(0), July(1), " +
	"August(1), September(0), October(0), November(0), December(1)\n"

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunUsage(t *testing.T) {
	code, out, errOut := runArgs(t)
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	kit.MustContain(t, errOut, "not provided")
	kit.MustContain(t, errOut, "usage:")

	code, out, errOut = runArgs(t, "a.csv", "b.csv")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	kit.MustContain(t, errOut, "expected exactly 1 argument, got 2")
}

func TestRunCSV(t *testing.T) {
	code, out, errOut := runArgs(t, kit.WriteFile(t, t.TempDir(), "people.csv", peopleCSV))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, wantReport, out)
}

func TestRunGzipCSV(t *testing.T) {
	t.Setenv("PEOPLESTATS_PARALLEL", "false")
	code, out, errOut := runArgs(t, kit.WriteGzip(t, t.TempDir(), "people.csv.gz", peopleCSV))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, wantReport, out)
}

func TestRunJSON(t *testing.T) {
	body := `[{"name":"A","siblings":"1","favourite_food":"X","birth_timezone":"UTC","birth_timestamp":"0"},
	{"name":"B","siblings":"2","favourite_food":"X","birth_timezone":"UTC","birth_timestamp":"0"},
	{"name":"C","siblings":"2","favourite_food":"Y","birth_timezone":"UTC","birth_timestamp":"0"}]`
	code, out, errOut := runArgs(t, kit.WriteFile(t, t.TempDir(), "people.json", body))
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Average siblings: 2", lines[0])
	assert.Equal(t, "Three favourite foods: X(2), Y(1)", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Birth Months: January(3), February(0)"))
}

func TestRunFailuresNameTheStage(t *testing.T) {
	header := "name,siblings,favourite_food,birth_timezone,birth_timestamp\n"
	cases := []struct {
		name string
		file string
		body string
		code int
		want string
	}{
		{"unknown timezone", "people.csv", header + "A,1,X,Mars/Base,0\n", 1, `error: birth_months: record 0 (A): unknown timezone "Mars/Base"`},
		{"empty dataset", "people.csv", header, 1, "error: average_siblings: dataset is empty"},
		{"short row", "people.csv", header + "A,1\n", 1, "error: load: line 2: 2 fields, header has 5"},
		{"bad extension", "people.xml", "<people/>", 2, "error: load: unsupported file extension"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, out, errOut := runArgs(t, kit.WriteFile(t, t.TempDir(), c.file, c.body))
			assert.Equal(t, c.code, code)
			assert.Empty(t, out, "no partial report on failure")
			kit.MustContain(t, errOut, c.want)
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	code, out, errOut := runArgs(t, "/definitely/not/here.csv")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	kit.MustContain(t, errOut, "error: load: input file /definitely/not/here.csv does not exist")
}
