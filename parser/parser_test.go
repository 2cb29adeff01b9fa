package parser

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/druid-example/extraction"
	"github.com/rulego/druid-example/model"
	"github.com/rulego/druid-example/utils/registry"
)

func substring(t *testing.T, index, length int) extraction.Fn {
	t.Helper()
	fn, err := extraction.NewSubstringFn(index, &length)
	require.NoError(t, err)
	return fn
}

func exampleSpec(t *testing.T) *ExampleParseSpec {
	t.Helper()
	spec, err := NewExampleParseSpec(
		NewTimestampSpec("timestamp", "auto", nil),
		NewDimensionsSpec([]string{"foo", "bar"}, nil),
		substring(t, 0, 1),
	)
	require.NoError(t, err)
	return spec
}

func TestExampleParseSpecParser(t *testing.T) {
	p, err := exampleSpec(t).MakeParser()
	require.NoError(t, err)

	fields, err := p.Parse(`{ "timestamp" : "2000", "foo" : "bar", "baz" : 40, "qux" : ["abc", "def"] }`)
	require.NoError(t, err)

	assert.Equal(t, []string{"timestamp", "foo", "baz", "qux"}, fields.Names())
	assert.Equal(t, map[string]interface{}{
		"timestamp": "2000",
		"foo":       "b",
		"baz":       int64(40),
		"qux":       []interface{}{"a", "d"},
	}, fields.Map())
}

func TestExampleParseSpecTransform(t *testing.T) {
	spec, err := NewExampleParseSpec(DefaultTimestampSpec(), DimensionsSpec{}, substring(t, 1, 2))
	require.NoError(t, err)
	p, err := spec.MakeParser()
	require.NoError(t, err)

	input := `{"timestamp":"2011-01-01","a":"x","b":[["hello",1],null,true],"c":{"d":"nested"},"e":1.5,"f":null}`
	fields, err := p.Parse(input)
	require.NoError(t, err)

	// "x" is shorter than the start index
	a, _ := fields.Get("a")
	assert.Nil(t, a)
	b, _ := fields.Get("b")
	assert.Equal(t, []interface{}{[]interface{}{"el", int64(1)}, nil, true}, b)
	c, _ := fields.Get("c")
	assert.Equal(t, map[string]interface{}{"d": "nested"}, c)
	e, _ := fields.Get("e")
	assert.Equal(t, 1.5, e)
	ts, _ := fields.Get("timestamp")
	assert.Equal(t, "2011-01-01", ts)
}

func TestExampleParseSpecMalformed(t *testing.T) {
	p, err := exampleSpec(t).MakeParser()
	require.NoError(t, err)

	for _, input := range []string{`{"foo":`, `not json`, `[1,2]`, `{"a":1} trailing`} {
		_, err := p.Parse(input)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrUnparseable), input)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, input, pe.Input)
		assert.Contains(t, err.Error(), input)
	}
}

func TestExampleParseSpecSerde(t *testing.T) {
	want := exampleSpec(t)

	decoded, err := Decode([]byte(`{
		"format": "example",
		"timestampSpec" : { "timestampColumn" : "timestamp", "timestampFormat" : "auto" },
		"dimensionsSpec": { "dimensions" : ["foo", "bar"] },
		"extractionFn" : { "type" : "substring", "index" : 0, "length" : 1 }
	}`))
	require.NoError(t, err)
	assert.True(t, want.Equal(decoded))

	data, err := json.Marshal(want)
	require.NoError(t, err)
	again, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, want.Equal(again))

	_, err = Decode([]byte(`{"format":"example","timestampSpec":{"column":"ts"}}`))
	assert.Error(t, err)
	_, err = Decode([]byte(`{"format":"example","extractionFn":{"type":"nope"}}`))
	assert.ErrorIs(t, err, registry.ErrUnknownType)
	_, err = NewExampleParseSpec(DefaultTimestampSpec(), DimensionsSpec{}, nil)
	assert.Error(t, err)
}

func TestExampleParseSpecWith(t *testing.T) {
	spec := exampleSpec(t)
	ts := NewTimestampSpec("time", "iso", nil)
	withTs := spec.WithTimestampSpec(ts)
	assert.Equal(t, ts, withTs.TimestampSpec())
	assert.Equal(t, spec.DimensionsSpec(), withTs.DimensionsSpec())
	assert.Equal(t, "timestamp", spec.TimestampSpec().Column)

	ds := NewDimensionsSpec([]string{"x"}, nil)
	withDs := spec.WithDimensionsSpec(ds)
	assert.Equal(t, ds, withDs.DimensionsSpec())
	assert.True(t, spec.ExtractionFn().Equal(withDs.(*ExampleParseSpec).ExtractionFn()))
	assert.False(t, spec.Equal(withDs))
}

func TestParseJSONObject(t *testing.T) {
	fields, err := ParseJSONObject(`{"z":1,"a":2.5,"m":"s","big":12345678901234,"neg":-3,"exp":1e2}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m", "big", "neg", "exp"}, fields.Names())
	big, _ := fields.Get("big")
	assert.Equal(t, int64(12345678901234), big)
	neg, _ := fields.Get("neg")
	assert.Equal(t, int64(-3), neg)
	exp, _ := fields.Get("exp")
	assert.Equal(t, 100.0, exp)

	empty, err := ParseJSONObject(`{}`)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestTimestampSpec(t *testing.T) {
	want := time.Date(2011, 4, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		value  interface{}
		want   time.Time
	}{
		{"自动ISO", "auto", "2011-04-15T00:00:00.000Z", want},
		{"自动毫秒", "auto", want.UnixMilli(), want},
		{"自动毫秒字符串", "auto", "1302825600000", want},
		{"ISO日期", "iso", "2011-04-15", want},
		{"ISO带时区", "iso", "2011-04-15T08:00:00+08:00", want},
		{"毫秒", "millis", float64(want.UnixMilli()), want},
		{"毫秒前导零", "millis", "010", time.UnixMilli(10).UTC()},
		{"秒字符串前导零", "posix", "0001302825600", want},
		{"秒", "posix", want.Unix(), want},
		{"微秒", "micro", want.UnixMicro(), want},
		{"纳秒", "nano", want.UnixNano(), want},
		{"Go布局", "2006/01/02", "2011/04/15", want},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := NewTimestampSpec("ts", tt.format, nil)
			got, err := spec.Extract(model.FieldsOf("ts", tt.value))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := NewTimestampSpec("ts", "iso", nil).Extract(model.FieldsOf("ts", "yesterday"))
	assert.Error(t, err)
	_, err = DefaultTimestampSpec().Extract(model.FieldsOf("other", 1))
	assert.Error(t, err)

	missing := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := NewTimestampSpec("ts", "auto", &missing).Extract(model.FieldsOf("ts", nil))
	require.NoError(t, err)
	assert.Equal(t, missing, got)
}

func TestTimestampSpecJSON(t *testing.T) {
	var spec TimestampSpec
	require.NoError(t, json.Unmarshal([]byte(`{"column":"ts","format":"millis"}`), &spec))
	assert.Equal(t, NewTimestampSpec("ts", "millis", nil), spec)

	require.NoError(t, json.Unmarshal([]byte(`{}`), &spec))
	assert.Equal(t, DefaultTimestampSpec(), spec)

	data, err := json.Marshal(NewTimestampSpec("ts", "iso", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"column":"ts","format":"iso"}`, string(data))
}

func TestDimensionsSpec(t *testing.T) {
	var spec DimensionsSpec
	require.NoError(t, json.Unmarshal([]byte(`{"dimensions":["a",{"type":"string","name":"b"}],"spatialDimensions":[]}`), &spec))
	assert.Equal(t, []string{"a", "b"}, spec.Dimensions)

	assert.Error(t, json.Unmarshal([]byte(`{"dimensions":[{"type":"long"}]}`), &spec))

	fields := model.FieldsOf("timestamp", "t", "x", 1, "y", 2, "z", 3)
	auto := NewDimensionsSpec(nil, []string{"y"})
	assert.Equal(t, []string{"x", "z"}, auto.Resolve(fields, "timestamp"))
	explicit := NewDimensionsSpec([]string{"z"}, nil)
	assert.Equal(t, []string{"z"}, explicit.Resolve(fields, "timestamp"))

	assert.True(t, NewDimensionsSpec(nil, nil).Equal(NewDimensionsSpec([]string{}, []string{})))
}

func tsvSpec(t *testing.T) *DelimitedParseSpec {
	t.Helper()
	spec, err := Decode([]byte(`{
		"format" : "tsv",
		"timestampSpec" : { "column" : "timestamp", "format" : "auto" },
		"dimensionsSpec" : { "dimensions": [], "dimensionExclusions" : [], "spatialDimensions" : [] },
		"columns": ["timestamp", "market", "quality", "placement", "placementish", "index"]
	}`))
	require.NoError(t, err)
	return spec.(*DelimitedParseSpec)
}

func TestDelimitedParseSpecTSV(t *testing.T) {
	spec := tsvSpec(t)
	assert.Equal(t, "\t", spec.Delimiter())
	assert.Equal(t, DefaultListDelimiter, spec.ListDelimiter())

	row, err := NewStringInputRowParser(spec).Parse("2011-04-15T00:00:00.000Z\tspot\tautomotive\tpreferred\ta\u0001preferred\t106.793700")
	require.NoError(t, err)
	assert.True(t, time.Date(2011, 4, 15, 0, 0, 0, 0, time.UTC).Equal(row.Timestamp))
	assert.Equal(t, []string{"market", "quality", "placement", "placementish", "index"}, row.Dimensions)
	assert.Equal(t, []string{"spot"}, row.Dimension("market"))
	assert.Equal(t, []string{"a", "preferred"}, row.Dimension("placementish"))
	assert.Equal(t, []string{"106.793700"}, row.Dimension("index"))
	m, ok := row.Metric("index")
	require.True(t, ok)
	assert.InDelta(t, 106.7937, m, 1e-9)

	// fewer values than columns is fine
	short, err := NewStringInputRowParser(spec).Parse("2011-04-15T00:00:00.000Z\tspot\tnews")
	require.NoError(t, err)
	assert.Equal(t, []string{}, short.Dimension("index"))

	_, err = NewStringInputRowParser(spec).Parse("2011-04-15T00:00:00.000Z\t1\t2\t3\t4\t5\t6")
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = NewStringInputRowParser(spec).Parse("not-a-time\tspot")
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestDelimitedParseSpecCSV(t *testing.T) {
	spec, err := NewDelimitedParseSpec(CSVFormat, DefaultTimestampSpec(), NewDimensionsSpec([]string{"name"}, nil),
		[]string{"timestamp", "name", "tags"}, "", "|")
	require.NoError(t, err)

	row, err := NewStringInputRowParser(spec).Parse(`1302825600000,"Smith, J",a|b`)
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, row.Dimensions)
	assert.Equal(t, []string{"Smith, J"}, row.Dimension("name"))
	assert.Equal(t, []string{"a", "b"}, row.Dimension("tags"))

	_, err = NewStringInputRowParser(spec).Parse(`1,"unterminated`)
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestDelimitedParseSpecValidation(t *testing.T) {
	_, err := NewDelimitedParseSpec("psv", DefaultTimestampSpec(), DimensionsSpec{}, []string{"a"}, "", "")
	assert.Error(t, err)
	_, err = NewDelimitedParseSpec(TSVFormat, DefaultTimestampSpec(), DimensionsSpec{}, nil, "", "")
	assert.Error(t, err)
	_, err = NewDelimitedParseSpec(TSVFormat, DefaultTimestampSpec(), DimensionsSpec{}, []string{"a", "a"}, "", "")
	assert.Error(t, err)
	_, err = NewDelimitedParseSpec(CSVFormat, DefaultTimestampSpec(), DimensionsSpec{}, []string{"a"}, "::", "")
	assert.Error(t, err)
}

func TestDelimitedParseSpecSerde(t *testing.T) {
	spec := tsvSpec(t)
	data, err := json.Marshal(spec)
	require.NoError(t, err)
	again, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, spec.Equal(again))
	assert.Equal(t, TSVFormat, again.Format())

	other := spec.WithTimestampSpec(NewTimestampSpec("ts", "iso", nil))
	assert.False(t, spec.Equal(other))
	assert.Equal(t, spec.Columns(), other.(*DelimitedParseSpec).Columns())
}

func TestJSONParseSpec(t *testing.T) {
	spec, err := Decode([]byte(`{"format":"json","timestampSpec":{"column":"ts","format":"posix"}}`))
	require.NoError(t, err)
	require.IsType(t, &JSONParseSpec{}, spec)

	row, err := NewStringInputRowParser(spec).Parse(`{"ts":1302825600,"host":"a","cpu":0.5}`)
	require.NoError(t, err)
	assert.Equal(t, int64(1302825600), row.Timestamp.Unix())
	assert.Equal(t, []string{"host", "cpu"}, row.Dimensions)

	data, err := json.Marshal(spec)
	require.NoError(t, err)
	again, err := Decode(data)
	require.NoError(t, err)
	assert.True(t, spec.Equal(again))
	assert.False(t, spec.Equal(spec.WithDimensionsSpec(NewDimensionsSpec([]string{"host"}, nil))))

	_, err = Decode([]byte(`{"format":"xml"}`))
	assert.ErrorIs(t, err, registry.ErrUnknownType)
}

func TestStringInputRowParserErrors(t *testing.T) {
	_, err := NewStringInputRowParser(nil).Parse("x")
	assert.ErrorIs(t, err, ErrUnparseable)

	p := NewStringInputRowParser(exampleSpec(t))
	_, err = p.Parse(`{"foo":"bar"}`)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, `{"foo":"bar"}`, pe.Input)

	row, err := p.Parse(`{"timestamp":"2000-01-01","foo":"bar","bar":["xy"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, row.Dimension("foo"))
	assert.Equal(t, []string{"x"}, row.Dimension("bar"))
}

func TestRegisteredSpecs(t *testing.T) {
	assert.Equal(t, []string{"csv", "example", "json", "tsv"}, Specs.Names())
}
