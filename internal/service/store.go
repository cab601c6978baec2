package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxSlugLength = 100

// likeEscaper makes search input match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// ListQuery describes one list request against a resource.
type ListQuery struct {
	Public   bool
	Params   url.Values
	Page     int
	PageSize int
}

// Store is the generic persistence service shared by every registered
// resource. T is a model type from the db package.
type Store[T any] struct {
	db  *gorm.DB
	res Resource
}

// NewStore creates a Store bound to a registered resource.
func NewStore[T any](gdb *gorm.DB, res Resource) *Store[T] {
	return &Store[T]{db: gdb, res: res}
}

// Resource returns the registration row the store was built from.
func (s *Store[T]) Resource() Resource {
	return s.res
}

func (s *Store[T]) withPreloads(query *gorm.DB) *gorm.DB {
	for _, rel := range s.res.Preload {
		query = query.Preload(rel)
	}
	return query
}

// List returns one page of records. Public queries only see visible rows and
// only the public filters apply.
func (s *Store[T]) List(ctx context.Context, q ListQuery) (Page[T], error) {
	result := Page[T]{
		Page:     normalizePage(q.Page),
		PageSize: normalizePageSize(q.PageSize),
	}

	query := s.db.WithContext(ctx).Model(new(T))
	rules := s.res.Admin
	if q.Public {
		rules = s.res.Public
		if s.res.Visibility != "" {
			query = query.Where(s.res.Visibility+" = ?", true)
		}
	}
	query = applyFilters(query, rules, q.Params).Session(&gorm.Session{})

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}

	result.TotalPages = calculateTotalPages(result.Total, result.PageSize)
	if result.Page > result.TotalPages {
		return result, ErrInvalidPage
	}
	offset := (result.Page - 1) * result.PageSize

	listing := s.withPreloads(query)
	for _, order := range s.res.Ordering {
		listing = listing.Order(order)
	}
	result.Items = []T{}
	if err := listing.Order("id desc").
		Limit(result.PageSize).
		Offset(offset).
		Find(&result.Items).Error; err != nil {
		return result, err
	}

	return result, nil
}

func applyFilters(query *gorm.DB, rules Query, params url.Values) *gorm.DB {
	for _, f := range rules.Filters {
		raw := strings.TrimSpace(params.Get(f.Param))
		if raw == "" {
			continue
		}
		switch f.Kind {
		case FilterBool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				continue
			}
			query = query.Where(f.Column+" = ?", v)
		case FilterInt:
			v, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			query = query.Where(f.Column+" = ?", v)
		case FilterDate:
			day, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				continue
			}
			query = query.Where(f.Column+" >= ? AND "+f.Column+" < ?", day, day.AddDate(0, 0, 1))
		default:
			query = query.Where(f.Column+" = ?", raw)
		}
	}

	if search := strings.TrimSpace(params.Get("search")); search != "" && len(rules.Search) > 0 {
		like := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		clauses := make([]string, 0, len(rules.Search))
		args := make([]interface{}, 0, len(rules.Search))
		for _, col := range rules.Search {
			clauses = append(clauses, "LOWER("+col+`) LIKE ? ESCAPE '\'`)
			args = append(args, like)
		}
		query = query.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	return query
}

// Find looks a record up by column. Public lookups only match visible rows.
func (s *Store[T]) Find(ctx context.Context, column string, value interface{}, public bool) (*T, error) {
	query := s.withPreloads(s.db.WithContext(ctx))
	if public && s.res.Visibility != "" {
		query = query.Where(s.res.Visibility+" = ?", true)
	}

	var item T
	if err := query.Where(column+" = ?", value).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Lookup resolves a public lookup key (slug, id or page name).
func (s *Store[T]) Lookup(ctx context.Context, key string) (*T, error) {
	if s.res.Lookup == "id" {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, ErrNotFound
		}
		return s.Find(ctx, "id", uint(id), true)
	}
	return s.Find(ctx, s.res.Lookup, key, true)
}

// Get fetches a record by id regardless of visibility.
func (s *Store[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.Find(ctx, "id", id, false)
}

// Create validates uniqueness and relations, then inserts the record.
func (s *Store[T]) Create(ctx context.Context, item *T) error {
	if err := s.prepare(ctx, item); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return s.translate(item, err)
	}
	return s.reload(ctx, item)
}

// Update writes every column of an existing record.
func (s *Store[T]) Update(ctx context.Context, item *T) error {
	if err := s.prepare(ctx, item); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error; err != nil {
		return s.translate(item, err)
	}
	return s.reload(ctx, item)
}

// Delete removes a record and returns it as it was before removal.
func (s *Store[T]) Delete(ctx context.Context, id uint) (*T, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Increment adds one to a counter column without touching updated_at.
// Concurrent increments are resolved by the database.
func (s *Store[T]) Increment(ctx context.Context, id uint, column string) error {
	return s.db.WithContext(ctx).Model(new(T)).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
}

func (s *Store[T]) prepare(ctx context.Context, item *T) error {
	if sl, ok := any(item).(db.Sluggable); ok && strings.TrimSpace(sl.SlugValue()) == "" {
		sl.SetSlug(MakeSlug(sl.SlugSource()))
	}

	verr := &ValidationError{}
	if err := s.checkUnique(ctx, item, verr); err != nil {
		return err
	}
	if err := s.checkRelations(ctx, item, verr); err != nil {
		return err
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}

func (s *Store[T]) checkUnique(ctx context.Context, item *T, verr *ValidationError) error {
	keyed, ok := any(item).(db.Keyed)
	if !ok {
		return nil
	}
	field, column, value := keyed.NaturalKey()
	if value == "" {
		verr.Add(field, "This field may not be blank.")
		return nil
	}

	query := s.db.WithContext(ctx).Model(new(T)).Where(column+" = ?", value)
	if id := recordID(item); id != 0 {
		query = query.Where("id <> ?", id)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		verr.Add(field, s.duplicateMessage(field))
	}
	return nil
}

func (s *Store[T]) checkRelations(ctx context.Context, item *T, verr *ValidationError) error {
	if len(s.res.Relations) == 0 {
		return nil
	}

	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(item); err != nil {
		return err
	}
	rv := reflect.ValueOf(item).Elem()

	for _, rel := range s.res.Relations {
		field := stmt.Schema.LookUpField(rel.Column)
		if field == nil {
			continue
		}
		value, zero := field.ValueOf(ctx, rv)
		if zero {
			continue
		}
		var id uint
		switch v := value.(type) {
		case *uint:
			if v == nil {
				continue
			}
			id = *v
		case uint:
			id = v
		default:
			continue
		}

		var count int64
		if err := s.db.WithContext(ctx).Table(rel.Table).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			verr.Add(rel.Field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
		}
	}
	return nil
}

// translate maps constraint errors that slipped past the pre-checks, for
// example two concurrent inserts of the same slug.
func (s *Store[T]) translate(item *T, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		if keyed, ok := any(item).(db.Keyed); ok {
			field, _, _ := keyed.NaturalKey()
			return NewValidationError(field, s.duplicateMessage(field))
		}
		return NewValidationError("non_field_errors", "A record with these values already exists.")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		field := "non_field_errors"
		if len(s.res.Relations) > 0 {
			field = s.res.Relations[0].Field
		}
		return NewValidationError(field, "Related object does not exist.")
	}
	return err
}

func (s *Store[T]) duplicateMessage(field string) string {
	return fmt.Sprintf("%s with this %s already exists.", s.res.Label, strings.ReplaceAll(field, "_", " "))
}

func (s *Store[T]) reload(ctx context.Context, item *T) error {
	id := recordID(item)
	if id == 0 {
		return nil
	}
	fresh, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	*item = *fresh
	return nil
}

func recordID(item interface{}) uint {
	if r, ok := item.(db.Record); ok {
		return r.RecordID()
	}
	return 0
}

// MakeSlug derives a URL-safe slug from a title.
func MakeSlug(source string) string {
	s := slug.Make(source)
	if len(s) > maxSlugLength {
		s = strings.TrimRight(s[:maxSlugLength], "-")
	}
	return s
}
