// Package normalizer turns the backend's inconsistent response envelopes into
// uniform records.
package normalizer

import (
	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// listPaths are tried in order; the first array found wins
var listPaths = []string{"data.users", "data.listings", "data.items", "data", "@this", "items", "listings", "users"}

// onePaths are tried in order; the first object found wins
var onePaths = []string{"data.listing", "data", "listing"}

type Normalizer struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *Normalizer {
	if log == nil {
		log = logger.L
	}
	return &Normalizer{logger: log}
}

// ExtractList unwraps the record array from a list response. ok is false
// when no known envelope matched, including for invalid JSON.
func ExtractList(payload []byte) (items []gjson.Result, ok bool) {
	if !gjson.ValidBytes(payload) {
		return nil, false
	}
	root := gjson.ParseBytes(payload)
	for _, path := range listPaths {
		if v := root.Get(path); v.IsArray() {
			return v.Array(), true
		}
	}
	return nil, false
}

// ExtractOne unwraps a single object from a detail response. A payload that
// is itself an object is returned as is, unless it carries a data or listing
// wrapper that did not hold an object or it reports success=false.
func ExtractOne(payload []byte) (gjson.Result, bool) {
	if !gjson.ValidBytes(payload) {
		return gjson.Result{}, false
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return gjson.Result{}, false
	}
	for _, path := range onePaths {
		if v := root.Get(path); v.IsObject() {
			return v, true
		}
	}
	if root.Get("data").Exists() || root.Get("listing").Exists() {
		return gjson.Result{}, false
	}
	if success := root.Get("success"); success.IsBool() && !success.Bool() {
		return gjson.Result{}, false
	}
	return root, true
}

// NormalizeList maps every object of a list response to a record tagged with
// kind. Records sharing an ID are collapsed to the first occurrence; records
// without an ID are all kept. An unrecognised envelope yields an empty slice.
func (n *Normalizer) NormalizeList(payload []byte, kind types.Kind) []record.Record {
	items, ok := ExtractList(payload)
	if !ok {
		n.logger.Warnw("unrecognised list response shape, treating as empty",
			"kind", kind,
			"payload_size", len(payload),
		)
		return []record.Record{}
	}

	records := make([]record.Record, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		rec := record.FromResult(item, kind)
		if rec.ID != "" {
			if _, dup := seen[rec.ID]; dup {
				continue
			}
			seen[rec.ID] = struct{}{}
		}
		records = append(records, rec)
	}
	return records
}

// NormalizeListValue is NormalizeList for an already decoded payload
func (n *Normalizer) NormalizeListValue(payload any, kind types.Kind) []record.Record {
	data, err := json.Marshal(payload)
	if err != nil {
		n.logger.Warnw("could not encode list payload", "kind", kind, "error", err)
		return []record.Record{}
	}
	return n.NormalizeList(data, kind)
}

// NormalizeOne maps a detail response to a record, or nil when no object
// could be found
func (n *Normalizer) NormalizeOne(payload []byte, kind types.Kind) *record.Record {
	obj, ok := ExtractOne(payload)
	if !ok {
		return nil
	}
	rec := record.FromResult(obj, kind)
	return &rec
}
