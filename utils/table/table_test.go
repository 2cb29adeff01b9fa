package table

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/druid-example/model"
)

func TestWrite(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "Alice", "sum": 30.5, "tags": []string{"a", "b"}},
		{"name": "Bob", "sum": nil},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows, []string{"sum"}))

	want := "" +
		"+------+-------+--------+\n" +
		"| sum  | name  | tags   |\n" +
		"+------+-------+--------+\n" +
		"| 30.5 | Alice | [a, b] |\n" +
		"| null | Bob   |        |\n" +
		"+------+-------+--------+\n" +
		"(2 rows)\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))
	assert.Equal(t, "(0 rows)\n", buf.String())
}

func TestWriteInputRows(t *testing.T) {
	row := &model.InputRow{
		Timestamp:  time.Date(2011, 4, 15, 0, 0, 0, 0, time.UTC),
		Dimensions: []string{"market"},
		Event:      model.FieldsOf("market", "spot", "index", 106.7937),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteInputRows(&buf, []*model.InputRow{row}))

	want := "" +
		"+--------------------------+--------+----------+\n" +
		"| __time                   | market | index    |\n" +
		"+--------------------------+--------+----------+\n" +
		"| 2011-04-15T00:00:00.000Z | spot   | 106.7937 |\n" +
		"+--------------------------+--------+----------+\n" +
		"(1 rows)\n"
	assert.Equal(t, want, buf.String())
}
