package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-bulk-checker/internal/domain"
)

func readCsv(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCsvExporter(t *testing.T) {
	t.Run("Export пишет заголовок в фиксированном порядке", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.csv")
		exp := NewCsvExporter(path, true)

		require.NoError(t, exp.Export(nil))

		records := readCsv(t, path)
		require.Len(t, records, 1)
		assert.Equal(t, []string{
			"input", "kind", "visibility", "member_count", "verified",
			"username", "requires_approval", "title",
		}, records[0])
	})

	t.Run("Отсутствующие поля выводятся пустыми строками", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.csv")
		exp := NewCsvExporter(path, false)

		results := []domain.CheckResult{
			{
				Input:      "t.me/+AAAAAAAAAAAAAAAAAA",
				Status:     domain.StatusValid,
				Kind:       domain.KindGroup,
				Visibility: domain.VisibilityPrivate,
			},
			{
				Input:            "@telegram",
				Status:           domain.StatusResolved,
				Kind:             domain.KindChannel,
				Visibility:       domain.VisibilityPublic,
				MemberCount:      ptr(9000),
				Verified:         ptr(true),
				Username:         ptr("telegram"),
				RequiresApproval: ptr(false),
				Title:            ptr("Telegram News"),
			},
		}
		require.NoError(t, exp.Export(results))

		records := readCsv(t, path)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"t.me/+AAAAAAAAAAAAAAAAAA", "group", "private", "", "", "", "", ""}, records[1])
		assert.Equal(t, []string{"@telegram", "channel", "public", "9000", "true", "telegram", "false", "Telegram News"}, records[2])
	})

	t.Run("Фильтр onlyValid отбрасывает неуспешные записи", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.csv")
		exp := NewCsvExporter(path, true)

		results := []domain.CheckResult{
			{Input: "@telegram", Status: domain.StatusResolved, Kind: domain.KindChannel, Visibility: domain.VisibilityPublic},
			{Input: "garbage", Status: domain.StatusUnrecognized, Kind: domain.KindUnknown, Visibility: domain.VisibilityUnknown},
			{Input: "t.me/+dead", Status: domain.InvalidStatus("InviteHashExpired"), Kind: domain.KindUnknown, Visibility: domain.VisibilityUnknown},
		}
		require.NoError(t, exp.Export(results))

		records := readCsv(t, path)
		require.Len(t, records, 2)
		assert.Equal(t, "@telegram", records[1][0])
	})

	t.Run("Без фильтра сохраняются все записи", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.csv")
		exp := NewCsvExporter(path, false)

		results := []domain.CheckResult{
			{Input: "@telegram", Status: domain.StatusResolved, Kind: domain.KindChannel, Visibility: domain.VisibilityPublic},
			{Input: "garbage", Status: domain.StatusUnrecognized, Kind: domain.KindUnknown, Visibility: domain.VisibilityUnknown},
		}
		require.NoError(t, exp.Export(results))

		records := readCsv(t, path)
		assert.Len(t, records, 3)
	})

	t.Run("Пустой путь к файлу возвращает ошибку", func(t *testing.T) {
		exp := NewCsvExporter("", true)
		assert.Error(t, exp.Export(nil))
	})
}
