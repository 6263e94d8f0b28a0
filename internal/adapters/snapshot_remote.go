package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"envsnap/internal/shared"
	"envsnap/internal/types"
)

const defaultSnapshotBranch = "main"
const defaultSnapshotFile = "snapshot.csv"
const defaultFetchTimeout = 30 * time.Second

// SnapshotRemoteAdapter loads a snapshot published in a GitHub
// repository, addressed by an owner/repo[/subpath] slug resolved
// against a fixed branch through the raw content host.
type SnapshotRemoteAdapter struct {
	BaseURL string
	Branch  string
	Client  *http.Client
}

func NewSnapshotRemoteAdapter() SnapshotRemoteAdapter {
	return SnapshotRemoteAdapter{
		BaseURL: "https://raw.githubusercontent.com",
		Branch:  defaultSnapshotBranch,
		Client:  &http.Client{Timeout: defaultFetchTimeout},
	}
}

func (a SnapshotRemoteAdapter) Fetch(ctx context.Context, slug string) (types.Snapshot, error) {
	url, err := a.resolveURL(slug)
	if err != nil {
		return types.Snapshot{}, err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to build snapshot request").
			WithCause(err)
	}
	response, err := a.Client.Do(request)
	if err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to fetch snapshot from %s", url)).
			WithCause(err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("snapshot fetch rejected").
			WithCause(shared.HTTPStatusError(response.StatusCode, url))
	}
	content, err := io.ReadAll(response.Body)
	if err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read snapshot response").
			WithCause(err)
	}
	return decodeSnapshotCSV(content)
}

// resolveURL turns owner/repo[/subpath] into a raw content URL. A slug
// without a subpath points at snapshot.csv in the repository root.
func (a SnapshotRemoteAdapter) resolveURL(slug string) (string, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(slug), "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid snapshot location %q, expected owner/repo[/subpath]", slug))
	}
	subpath := defaultSnapshotFile
	if len(parts) > 2 {
		subpath = strings.Join(parts[2:], "/")
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s", a.BaseURL, parts[0], parts[1], a.Branch, subpath), nil
}
