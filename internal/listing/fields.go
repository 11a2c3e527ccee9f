package listing

import "github.com/deespora/backoffice/internal/domain/record"

// SearchField projects the text a search term is matched against
type SearchField func(record.Record) string

var (
	FieldName      SearchField = func(r record.Record) string { return r.DisplayName }
	FieldCity      SearchField = func(r record.Record) string { return r.City }
	FieldLocation  SearchField = func(r record.Record) string { return r.Location }
	FieldCategory  SearchField = func(r record.Record) string { return r.Category }
	FieldOrganizer SearchField = func(r record.Record) string { return r.Organizer }
	FieldEmail     SearchField = func(r record.Record) string { return r.Email }
	FieldPhone     SearchField = func(r record.Record) string { return r.Phone }
)

// DefaultSearchFields are searched by listing views
var DefaultSearchFields = []SearchField{FieldName, FieldCity, FieldLocation, FieldCategory, FieldOrganizer}

// UserSearchFields are searched by the users and admins views
var UserSearchFields = []SearchField{FieldName, FieldEmail, FieldPhone}
