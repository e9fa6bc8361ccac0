// Utilities for parsing cURL commands copied from browser DevTools.
package shared

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
)

// CurlRequest represents the URL and headers parsed from a cURL command.
type CurlRequest struct {
	URL     string
	Headers map[string]string
}

var (
	headerRegex = regexp.MustCompile(`-H\s+'([^']+)'|-H\s+"([^"]+)"`)
	urlRegex    = regexp.MustCompile(`curl\s+(?:'([^']+)'|"([^"]+)"|(\S+))`)
)

// ParseCurlFile reads a .sh file containing a cURL command and parses it.
func ParseCurlFile(filepath string) (*CurlRequest, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read curl file: %w", err)
	}

	return ParseCurlCommand(string(content))
}

// ParseCurlCommand parses a cURL command string and extracts the request URL and headers.
func ParseCurlCommand(curlCmd string) (*CurlRequest, error) {
	curlCmd = strings.ReplaceAll(curlCmd, "\\\n", " ")
	curlCmd = strings.ReplaceAll(curlCmd, "\\", "")

	req := &CurlRequest{Headers: make(map[string]string)}

	if m := urlRegex.FindStringSubmatch(curlCmd); m != nil {
		for _, g := range m[1:] {
			if g != "" {
				req.URL = g
				break
			}
		}
	}

	for _, match := range headerRegex.FindAllStringSubmatch(curlCmd, -1) {
		headerLine := match[1]
		if headerLine == "" {
			headerLine = match[2]
		}

		parts := strings.SplitN(headerLine, ":", 2)
		if len(parts) == 2 {
			req.Headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}

	if req.URL == "" || strings.HasPrefix(req.URL, "-") {
		return nil, fmt.Errorf("%w: no request URL found in curl command", ErrInvalidArgument)
	}

	return req, nil
}

// ClientID returns the client_id query parameter of the request URL.
func (c *CurlRequest) ClientID() (string, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	id := u.Query().Get("client_id")
	if id == "" {
		return "", fmt.Errorf("%w: no client_id in %s", ErrMissingCredentials, u.Redacted())
	}
	return id, nil
}
