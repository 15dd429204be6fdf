package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

// Кодек поля orders.product_refs: список идентификаторов товаров хранится одной
// текстовой колонкой как десятичные id, разделённые запятыми. Декодирование строго
// обратное кодированию — строка разбирается по тем же правилам, по id.

func encodeProductRefs(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func decodeProductRefs(refs string) ([]int64, error) {
	if strings.TrimSpace(refs) == "" {
		return nil, nil
	}
	parts := strings.Split(refs, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse product ref %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
