package postgres

import (
	"testing"
	"time"

	"github.com/Station-Manager/wrap"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode[I any](t *testing.T, c wrap.Codec[I], v I) any {
	t.Helper()
	out := wrap.NewOutput(c.Backend())
	isNull, err := c.Encode(v, out)
	require.NoError(t, err)
	assert.Equal(t, wrap.IsNullNo, isNull)
	assert.Equal(t, Backend{}, out.Backend())
	return out.Value()
}

func TestScalarCodecs(t *testing.T) {
	assert.Equal(t, []byte{}, encode[[]byte](t, Bytea{}, nil))
	assert.Equal(t, int64(5), encode[int32](t, Int4{}, 5))
	assert.Equal(t, int64(-5), encode[int64](t, Int8{}, -5))
	assert.Equal(t, 1.5, encode[float64](t, Float8{}, 1.5))
	assert.Equal(t, true, encode[bool](t, Bool{}, true))
	assert.Equal(t, "20m", encode[string](t, Text{}, "20m"))

	b, err := Bytea{}.Decode([]byte{0xde, 0xad})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, b)

	i4, err := Int4{}.Decode(int64(-3))
	require.NoError(t, err)
	assert.Equal(t, int32(-3), i4)

	_, err = Int4{}.Decode(int64(1) << 40)
	assert.Error(t, err)

	i8, err := Int8{}.Decode(int64(1) << 40)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<40, i8)

	f, err := Float8{}.Decode(float64(2.25))
	require.NoError(t, err)
	assert.Equal(t, 2.25, f)

	ok, err := Bool{}.Decode([]byte("t"))
	require.NoError(t, err)
	assert.True(t, ok)

	s, err := Text{}.Decode([]byte("SSB"))
	require.NoError(t, err)
	assert.Equal(t, "SSB", s)

	_, err = Text{}.Decode(nil)
	assert.ErrorIs(t, err, wrap.ErrUnexpectedNull)
}

func TestTimestamptz(t *testing.T) {
	want := time.Date(2025, time.November, 8, 12, 5, 0, 0, time.UTC)

	raw := encode[time.Time](t, Timestamptz{}, want.In(time.FixedZone("EAT", 3*60*60)))
	assert.Equal(t, time.UTC, raw.(time.Time).Location())
	assert.True(t, want.Equal(raw.(time.Time)))

	for _, in := range []any{want, "2025-11-08 12:05:00+00", []byte("2025-11-08 15:05:00+03")} {
		got, err := Timestamptz{}.Decode(in)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "want %s, got %s", want, got)
	}

	_, err := Timestamptz{}.Decode("not a time")
	assert.Error(t, err)

	_, err = Timestamptz{}.Decode(int64(1))
	assert.Error(t, err)

	p, err := Timestamptz{}.DecodeNullable(nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNumeric(t *testing.T) {
	want := boilertypes.NewDecimal(decimal.New(1250, 2))

	raw := encode[boilertypes.Decimal](t, Numeric{}, want)
	require.IsType(t, "", raw)

	got, err := Numeric{}.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(want.Big))

	got, err = Numeric{}.Decode([]byte("0.001"))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(decimal.New(1, 3)))

	out := wrap.NewOutput(Backend{})
	_, err = Numeric{}.Encode(boilertypes.Decimal{}, out)
	assert.Error(t, err)
	assert.False(t, out.Written())

	_, err = Numeric{}.Decode("twelve")
	assert.Error(t, err)

	_, err = Numeric{}.Decode(nil)
	assert.ErrorIs(t, err, wrap.ErrUnexpectedNull)
}

func TestJSONB(t *testing.T) {
	doc := boilertypes.JSON(`{"rst_sent":"57"}`)
	assert.Equal(t, []byte(doc), encode[boilertypes.JSON](t, JSONB{}, doc))

	_, err := JSONB{}.Encode(boilertypes.JSON("{"), wrap.NewOutput(Backend{}))
	assert.Error(t, err)

	got, err := JSONB{}.Decode([]byte(doc))
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))

	_, err = JSONB{}.Decode("[1,")
	assert.Error(t, err)
}

func TestTextArray(t *testing.T) {
	want := []string{"M0CMC", "7Q5MLV", "with space", `quo"te`}

	raw := encode[[]string](t, TextArray{}, want)
	got, err := TextArray{}.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	empty := encode[[]string](t, TextArray{}, nil)
	assert.Equal(t, "{}", empty)
	got, err = TextArray{}.Decode(empty)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = TextArray{}.Decode([]byte(`{a,b}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = TextArray{}.Decode("not an array")
	assert.Error(t, err)

	p, err := TextArray{}.DecodeNullable(nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestBackend(t *testing.T) {
	assert.Equal(t, "postgres", Backend{}.Name())
	assert.Equal(t, "postgres", Backend{}.DriverName())
}
