package httpclient

import (
	"io"
	"net/http"
)

// maxBodySize caps how much of a response is buffered
const maxBodySize = 32 << 20

func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}
