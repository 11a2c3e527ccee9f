package record

import (
	"github.com/deespora/backoffice/internal/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FromMap maps an already decoded object, such as a row from a JSON or CSV
// import. Values that cannot be encoded yield an empty record.
func FromMap(raw map[string]any, kind types.Kind) Record {
	return FromResult(gjsonOf(raw), kind)
}

// FromJSON maps a single encoded JSON object
func FromJSON(data []byte, kind types.Kind) Record {
	return FromResult(gjson.ParseBytes(data), kind)
}

func gjsonOf(raw map[string]any) gjson.Result {
	if raw == nil {
		return gjson.Result{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return gjson.Result{}
	}
	return gjson.ParseBytes(data)
}
