package subsonic

import (
	"fmt"
	"io"
	"net/http"
)

// query performs one GET against a REST endpoint and returns the parsed
// envelope. Credentials go in the Basic auth header; only stream and
// cover-art URLs embed them.
//
// Error precedence: a protocol error inside the envelope wins even when the
// transport status is 200, then a non-200 status, then parse failures.
func (c *Client) query(endpoint string, params map[string]string) (*document, error) {
	requestURL := c.buildURL(endpoint, params)
	c.debugf("GET %s", requestURL)

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}
	c.debugf("response %d: %s", resp.StatusCode, body)

	doc, parseErr := parseDocument(body)
	if doc != nil {
		if protoErr := doc.protocolError(); protoErr != nil {
			return nil, protoErr
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return doc, nil
}
