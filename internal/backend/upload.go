package backend

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"time"

	"github.com/deespora/backoffice/internal/api/dto"
	"github.com/deespora/backoffice/internal/domain/record"
	ierr "github.com/deespora/backoffice/internal/errors"
	"github.com/deespora/backoffice/internal/httpclient"
	"github.com/deespora/backoffice/internal/types"
	"github.com/h2non/filetype"
)

// maxImageSize is the largest image accepted for upload
const maxImageSize = 5 << 20

func (c *client) CreateListing(ctx context.Context, req *dto.CreateListingRequest) (*record.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := encodeListingForm(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.mutate(ctx, &httpclient.Request{
		Method:      http.MethodPost,
		URL:         c.url("listings"),
		Body:        body,
		ContentType: contentType,
	}, "listings/create", "Failed to create listing")
	if err != nil {
		return nil, err
	}
	return c.normalizer.NormalizeOne(resp.Body, types.KindListings), nil
}

func encodeListingForm(req *dto.CreateListingRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"category":    req.Category,
		"location":    req.Location,
		"price":       req.Price,
		"contact":     req.Contact,
	}
	if req.EventDate != nil {
		fields["eventDate"] = req.EventDate.UTC().Format(time.RFC3339)
	}
	for k, v := range req.Fields {
		if _, taken := fields[k]; !taken {
			fields[k] = v
		}
	}

	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", ierr.WithError(err).Mark(ierr.ErrSystem)
		}
	}

	for _, img := range req.Images {
		kind, err := checkImage(img)
		if err != nil {
			return nil, "", err
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+escapeQuotes(img.Filename)+`"`)
		header.Set("Content-Type", kind)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", ierr.WithError(err).Mark(ierr.ErrSystem)
		}
		if _, err := part.Write(img.Content); err != nil {
			return nil, "", ierr.WithError(err).Mark(ierr.ErrSystem)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", ierr.WithError(err).Mark(ierr.ErrSystem)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// checkImage sniffs the content and returns its MIME type
func checkImage(img dto.ListingImage) (string, error) {
	if len(img.Content) > maxImageSize {
		return "", ierr.NewErrorf("image %s is %d bytes", img.Filename, len(img.Content)).
			WithHintf("%s is larger than 5 MB", img.Filename).
			Mark(ierr.ErrValidation)
	}
	if !filetype.IsImage(img.Content) {
		return "", ierr.NewErrorf("file %s is not an image", img.Filename).
			WithHintf("%s is not a supported image", img.Filename).
			Mark(ierr.ErrValidation)
	}
	kind, err := filetype.Match(img.Content)
	if err != nil {
		return "", ierr.WithError(err).Mark(ierr.ErrValidation)
	}
	return kind.MIME.Value, nil
}

func escapeQuotes(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
