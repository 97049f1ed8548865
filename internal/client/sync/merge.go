package sync

import "github.com/iudanet/bookkeeper/internal/models"

// Merge объединяет локальный и удаленный списки по title.
// Сначала складываются локальные записи, затем удаленные, поэтому при
// совпадении title побеждает удаленная копия. Порядок результата - порядок
// первого появления title: локальные, затем только удаленные.
// Удаленная копия без числового id (ID 0) сохраняет локальный id.
func Merge(local, remote []models.Book) []models.Book {
	index := make(map[string]int, len(local)+len(remote))
	merged := make([]models.Book, 0, len(local)+len(remote))

	fold := func(books []models.Book) {
		for _, b := range books {
			if i, ok := index[b.Title]; ok {
				if b.ID == 0 {
					b.ID = merged[i].ID
				}
				merged[i] = b
				continue
			}
			index[b.Title] = len(merged)
			merged = append(merged, b)
		}
	}

	fold(local)
	fold(remote)

	return merged
}
