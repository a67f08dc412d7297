package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

func registerCommonSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^the response body should contain "([^"]*)"$`, theResponseBodyShouldContain)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	clock.SetCurrentTime(t)
	return nil
}

// userID returns the stable ID behind an alias, creating one on first use.
func (tc *TestContext) userID(alias string) uuid.UUID {
	id, ok := tc.users[alias]
	if !ok {
		id = uuid.New()
		tc.users[alias] = id
	}
	return id
}

func iAmAuthenticatedAs(ctx context.Context, alias string) error {
	tc := GetTestContext(ctx)

	token, ok := tc.tokens[alias]
	if !ok {
		var err error
		token, err = injector.TokenService.IssueAccessToken(ctx, entity.CurrentUser{
			ID:    tc.userID(alias),
			Email: alias + "@example.com",
			Role:  entity.UserRoleOperator,
		}, time.Hour)
		if err != nil {
			return err
		}
		tc.tokens[alias] = token
	}

	tc.requestHeaders["Authorization"] = "Bearer " + token
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	delete(GetTestContext(ctx).requestHeaders, "Authorization")
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return GetTestContext(ctx).send(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	return GetTestContext(ctx).send(method, path, []byte(body.Content))
}

func (tc *TestContext) send(method, path string, body []byte) error {
	for name, value := range tc.saved {
		path = strings.ReplaceAll(path, "{"+name+"}", value)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range tc.requestHeaders {
		req.Header.Set(name, value)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no request was sent")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	value, err := GetTestContext(ctx).field(path)
	if err != nil {
		return err
	}
	if actual := stringify(value); actual != expected {
		return fmt.Errorf("expected %s to be %q, got %q", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, path string, count int) error {
	value, err := GetTestContext(ctx).field(path)
	if err != nil {
		return err
	}
	switch v := value.(type) {
	case []any:
		if len(v) != count {
			return fmt.Errorf("expected %s to have %d items, got %d", path, count, len(v))
		}
	case map[string]any:
		if len(v) != count {
			return fmt.Errorf("expected %s to have %d keys, got %d", path, count, len(v))
		}
	default:
		return fmt.Errorf("%s is not a collection", path)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	_, err := GetTestContext(ctx).field(path)
	return err
}

func theResponseHeaderShouldContain(ctx context.Context, name, expected string) error {
	tc := GetTestContext(ctx)
	if actual := tc.response.Header.Get(name); !strings.Contains(actual, expected) {
		return fmt.Errorf("expected header %s to contain %q, got %q", name, expected, actual)
	}
	return nil
}

func theResponseBodyShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if !bytes.Contains(tc.responseBody, []byte(expected)) {
		return fmt.Errorf("expected body to contain %q, got %q", expected, string(tc.responseBody))
	}
	return nil
}

func iSaveTheResponseFieldAs(ctx context.Context, path, name string) error {
	tc := GetTestContext(ctx)
	value, err := tc.field(path)
	if err != nil {
		return err
	}
	tc.saved[name] = stringify(value)
	return nil
}

// field walks a dotted path through the JSON response. Numeric segments
// index into arrays; map keys may contain spaces.
func (tc *TestContext) field(path string) (any, error) {
	var current any
	if err := json.Unmarshal(tc.responseBody, &current); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %s not found at %q", path, segment)
			}
			current = next
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %s: bad index %q", path, segment)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %s: cannot descend into %q", path, segment)
		}
	}
	return current, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	}
}
