package record

import (
	"testing"

	"github.com/hamba/avro/v2/ocf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPageMiddle(t *testing.T) {
	path := writeContainer(t, tenPeople())

	page, err := GetPage(path, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Index)
	assert.Equal(t, 4, page.Size)
	assert.Equal(t, []string{"Dave", "Eve", "Frank", "Alice Jones"}, recordNames(page.Records))
	assert.True(t, page.HasMore)
}

func TestGetPageShortLastPage(t *testing.T) {
	path := writeContainer(t, tenPeople())

	page, err := GetPage(path, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"Grace", "Heidi"}, recordNames(page.Records))
	assert.False(t, page.HasMore)
}

func TestGetPagePastEnd(t *testing.T) {
	path := writeContainer(t, tenPeople())

	page, err := GetPage(path, 9, 4)
	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.False(t, page.HasMore)
}

func TestGetPageExactBoundary(t *testing.T) {
	path := writeContainer(t, tenPeople())

	// 10 records, size 5: page 1 is full but nothing follows it.
	page, err := GetPage(path, 1, 5)
	require.NoError(t, err)
	assert.Len(t, page.Records, 5)
	assert.False(t, page.HasMore)

	page, err = GetPage(path, 2, 5)
	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.False(t, page.HasMore)
}

// Concatenating consecutive pages of any size reproduces the full record
// sequence with no gaps, duplicates, or reordering.
func TestGetPageConcatenationCoversFile(t *testing.T) {
	people := tenPeople()
	path := writeContainer(t, people)
	want := recordNames(people)

	for _, size := range []int{1, 3, 4, 7, 10, 25} {
		var got []string
		for index := 0; ; index++ {
			page, err := GetPage(path, index, size)
			require.NoError(t, err)
			got = append(got, recordNames(page.Records)...)
			if !page.HasMore {
				break
			}
		}
		assert.Equal(t, want, got, "page size %d", size)
	}
}

func TestGetPageValidation(t *testing.T) {
	path := writeContainer(t, tenPeople())

	_, err := GetPage(path, -1, 4)
	assert.Error(t, err)
	_, err = GetPage(path, 0, 0)
	assert.Error(t, err)
}

func TestGetPagePropagatesOpenErrors(t *testing.T) {
	_, err := GetPage("no/such/file.avro", 0, 4)
	fe, ok := AsFileError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, fe.Kind)
}

func TestGetPageTruncatedFile(t *testing.T) {
	// One record per block, so damage at the tail stays local to the last record.
	path := writeContainer(t, tenPeople(), ocf.WithBlockLength(1))
	truncateTail(t, path, 20)

	// Pages made only of intact records still succeed.
	page, err := GetPage(path, 0, 4)
	require.NoError(t, err)
	assert.Len(t, page.Records, 4)
	assert.True(t, page.HasMore)

	page, err = GetPage(path, 1, 4)
	require.NoError(t, err)
	assert.Len(t, page.Records, 4)

	// The page covering the truncated record fails whole; nothing partial
	// comes back.
	_, err = GetPage(path, 2, 4)
	fe, ok := AsFileError(err)
	require.True(t, ok)
	assert.Equal(t, KindCorruptRecord, fe.Kind)
	assert.GreaterOrEqual(t, fe.Record, 8)
}
