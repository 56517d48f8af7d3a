package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "stayhub/errors"
	"stayhub/models"
)

func TestResolveDates(t *testing.T) {
	t.Run("liệt kê đủ cả hai đầu khoảng", func(t *testing.T) {
		dates, err := ResolveDates("01/06/2024", "05/06/2024", nil, nil)
		require.NoError(t, err)
		require.Len(t, dates, 5)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), dates[0])
		assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), dates[4])
	})

	t.Run("một ngày duy nhất khi bắt đầu trùng kết thúc", func(t *testing.T) {
		dates, err := ResolveDates("01/06/2024", "01/06/2024", nil, nil)
		require.NoError(t, err)
		assert.Len(t, dates, 1)
	})

	t.Run("lọc theo thứ trong tuần", func(t *testing.T) {
		// Chủ nhật (0) trong 01-14/06/2024 là ngày 02 và 09
		dates, err := ResolveDates("01/06/2024", "14/06/2024", nil, models.IntList{0})
		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), dates[0])
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), dates[1])
	})

	t.Run("lọc theo danh sách ngày áp dụng", func(t *testing.T) {
		applicable := models.StringList{"03/06/2024", "05/06/2024"}
		dates, err := ResolveDates("01/06/2024", "10/06/2024", applicable, nil)
		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), dates[0])
		assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), dates[1])
	})

	t.Run("hai bộ lọc giao nhau", func(t *testing.T) {
		// 02/06 là chủ nhật, 03/06 là thứ hai; lọc chủ nhật chỉ còn 02/06
		applicable := models.StringList{"02/06/2024", "03/06/2024"}
		dates, err := ResolveDates("01/06/2024", "10/06/2024", applicable, models.IntList{0})
		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), dates[0])
	})

	t.Run("ngày áp dụng ngoài khoảng thì kết quả rỗng", func(t *testing.T) {
		applicable := models.StringList{"20/07/2024"}
		dates, err := ResolveDates("01/06/2024", "10/06/2024", applicable, nil)
		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("ngày bắt đầu sai định dạng", func(t *testing.T) {
		_, err := ResolveDates("2024-06-01", "10/06/2024", nil, nil)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeInvalidFormat, appErr.Code)
	})

	t.Run("ngày kết thúc trước ngày bắt đầu", func(t *testing.T) {
		_, err := ResolveDates("10/06/2024", "01/06/2024", nil, nil)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	})
}
