package foodinspect_test

import (
	"testing"

	"github.com/fwojciec/foodinspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuery(t *testing.T) {
	t.Parallel()

	t.Run("defaults to all Seattle records", func(t *testing.T) {
		t.Parallel()

		q := foodinspect.DefaultQuery()

		assert.Equal(t, "Seattle", q[foodinspect.ParamCity])
		assert.Equal(t, "All", q[foodinspect.ParamInspectionType])
		assert.Equal(t, "W", q[foodinspect.ParamOutput])
		assert.Equal(t, ",", q[foodinspect.ParamLatitude])
		assert.Len(t, q, 16)
	})

	t.Run("returns independent copies", func(t *testing.T) {
		t.Parallel()

		q := foodinspect.DefaultQuery()
		q[foodinspect.ParamCity] = "Bellevue"

		assert.Equal(t, "Seattle", foodinspect.DefaultQuery()[foodinspect.ParamCity])
	})
}

func TestQuery_With(t *testing.T) {
	t.Parallel()

	t.Run("applies known overrides", func(t *testing.T) {
		t.Parallel()

		q := foodinspect.DefaultQuery().With(map[string]string{
			foodinspect.ParamZipCode:         "98125",
			foodinspect.ParamInspectionStart: "3/3/2013",
		})

		assert.Equal(t, "98125", q[foodinspect.ParamZipCode])
		assert.Equal(t, "3/3/2013", q[foodinspect.ParamInspectionStart])
		assert.Equal(t, "Seattle", q[foodinspect.ParamCity])
	})

	t.Run("ignores unknown keys", func(t *testing.T) {
		t.Parallel()

		q := foodinspect.DefaultQuery().With(map[string]string{"Bogus": "x"})

		_, ok := q["Bogus"]
		assert.False(t, ok)
		assert.Len(t, q, 16)
	})

	t.Run("does not modify receiver", func(t *testing.T) {
		t.Parallel()

		base := foodinspect.DefaultQuery()
		_ = base.With(map[string]string{foodinspect.ParamCity: "Kent"})

		assert.Equal(t, "Seattle", base[foodinspect.ParamCity])
	})
}

func TestQuery_Encode(t *testing.T) {
	t.Parallel()

	q := foodinspect.Query{"Sort": "B", "City": "Seattle", "Latitude": ","}

	assert.Equal(t, "City=Seattle&Latitude=%2C&Sort=B", q.Encode())
}

func TestQuery_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts empty dates", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, foodinspect.DefaultQuery().Validate())
	})

	t.Run("accepts M/D/YYYY dates", func(t *testing.T) {
		t.Parallel()

		q := foodinspect.DefaultQuery().With(map[string]string{
			foodinspect.ParamInspectionStart: "3/3/2013",
			foodinspect.ParamInspectionEnd:   "12/31/2016",
		})

		require.NoError(t, q.Validate())
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		t.Parallel()

		q := foodinspect.DefaultQuery().With(map[string]string{
			foodinspect.ParamInspectionEnd: "2016-03-03",
		})

		err := q.Validate()

		require.Error(t, err)
		assert.Equal(t, foodinspect.EINVALID, foodinspect.ErrorCode(err))
		assert.Contains(t, foodinspect.ErrorMessage(err), "Inspection_End")
	})
}
