package store

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gorm.io/gorm"

	"admin-service/internal/models"
)

// ListParams carries everything the list query builder consumes. Filters are
// direct equality matches on attribute keys; Search is a case-insensitive
// substring disjunction over SearchFields.
type ListParams struct {
	Page           int
	Limit          int
	SortBy         string
	SortOrder      string
	Search         string
	SearchFields   []string
	Filters        map[string]string
	IncludeDeleted bool
}

// DefaultSearchFields are used when a model configures none.
var DefaultSearchFields = []string{"name", "title", "description"}

// identifier restricts attribute keys interpolated into SQL expressions.
// Anything else is dropped rather than quoted.
var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// jsonExpr returns the SQL expression extracting one attribute from the
// document payload, per dialect. The key must already be validated.
func jsonExpr(dialect, key string) string {
	if dialect == "postgres" {
		return fmt.Sprintf("data::jsonb ->> '%s'", key)
	}
	return fmt.Sprintf("json_extract(data, '$.%s')", key)
}

// bookkeepingColumns maps record keys onto real columns, bypassing the JSON
// payload for the fields the store manages itself.
var bookkeepingColumns = map[string]string{
	models.KeyID:        "id",
	models.KeyCreatedAt: "created_at",
	models.KeyUpdatedAt: "updated_at",
}

// buildListQuery combines the active/trash condition, equality filters and
// the search disjunction into one predicate. Every group is ANDed; a lone
// group stands alone; no groups means match-all within the collection.
func (s *Store) buildListQuery(db *gorm.DB, collection string, params ListParams) *gorm.DB {
	dialect := db.Dialector.Name()
	query := db.Model(&models.Document{}).Where("collection = ?", collection)

	if params.IncludeDeleted {
		query = query.Where("deleted = ?", true)
	} else {
		query = query.Where("deleted IS NULL OR deleted = ?", false)
	}

	for _, key := range sortedKeys(params.Filters) {
		value := params.Filters[key]
		if value == "" || !identifier.MatchString(key) {
			continue
		}
		if column, ok := bookkeepingColumns[key]; ok {
			query = query.Where(fmt.Sprintf("%s = ?", column), value)
			continue
		}
		query = query.Where(fmt.Sprintf("%s = ?", jsonExpr(dialect, key)), value)
	}

	search := strings.TrimSpace(params.Search)
	if search != "" {
		fields := params.SearchFields
		if len(fields) == 0 {
			fields = DefaultSearchFields
		}
		var clauses []string
		var args []interface{}
		for _, field := range fields {
			if !identifier.MatchString(field) {
				continue
			}
			clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", jsonExpr(dialect, field)))
			args = append(args, "%"+strings.ToLower(search)+"%")
		}
		if len(clauses) > 0 {
			query = query.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
	}

	return query
}

// orderClause resolves the sort expression. Absent sortBy sorts newest
// first by creation time; explicit sortBy defaults ascending.
func orderClause(dialect string, params ListParams) string {
	if params.SortBy == "" || !identifier.MatchString(params.SortBy) {
		return "created_at DESC"
	}
	direction := "ASC"
	if strings.EqualFold(params.SortOrder, "desc") {
		direction = "DESC"
	}
	if column, ok := bookkeepingColumns[params.SortBy]; ok {
		return fmt.Sprintf("%s %s", column, direction)
	}
	return fmt.Sprintf("%s %s", jsonExpr(dialect, params.SortBy), direction)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic predicate order keeps generated SQL stable across runs.
	sort.Strings(keys)
	return keys
}
