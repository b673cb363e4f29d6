package request

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/smartuae/uaetools/utils/json"
)

// Request performs an HTTP request and decodes the JSON body into resp.
// A nil client uses http.DefaultClient; pass a context with a deadline to
// bound the call. Non-2xx responses are reported as errors.
func Request(ctx context.Context, client *http.Client, method, url string, param string, resp interface{}, headKvs ...string) error {
	req, err := http.NewRequestWithContext(ctx, method, url, strings.NewReader(param))
	if err != nil {
		return err
	}
	if len(headKvs)%2 != 0 {
		return errors.New("header be pair")
	}
	for i := 0; i < len(headKvs); i += 2 {
		req.Header.Set(headKvs[i], headKvs[i+1])
	}
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errors.Errorf("unexpected status code: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(body, resp)
}
