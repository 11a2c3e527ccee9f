package normalizer

import (
	"github.com/deespora/backoffice/internal/domain/record"
	"github.com/deespora/backoffice/internal/types"
	"github.com/tidwall/gjson"
)

// LoginResult is the decoded login envelope
type LoginResult struct {
	Success bool
	Token   string
	User    *record.Record
	// Message is the backend's human readable message when it sent a string
	Message string
}

// ExtractLogin decodes {success, message: {token, user}}, the shape the
// backend uses for logins, and the flatter {token, user} and
// {data: {token, user}} variants.
func ExtractLogin(payload []byte) LoginResult {
	var result LoginResult
	if !gjson.ValidBytes(payload) {
		return result
	}
	root := gjson.ParseBytes(payload)

	if msg := root.Get("message"); msg.Type == gjson.String {
		result.Message = msg.String()
	}

	var body gjson.Result
	for _, path := range []string{"message", "data", "@this"} {
		if v := root.Get(path); v.IsObject() && v.Get("token").Exists() {
			body = v
			break
		}
	}

	result.Token = body.Get("token").String()
	if user := body.Get("user"); user.IsObject() {
		rec := record.FromResult(user, types.KindUsers)
		result.User = &rec
	}

	success := root.Get("success")
	result.Success = result.Token != "" && (!success.Exists() || success.Bool())
	return result
}
