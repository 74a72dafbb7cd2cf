// Package updater checks GitHub Releases for a newer version.
package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/buildinfo"
)

const releasesURL = "https://api.github.com/repos/ChandraDevYadav/a2a-orchestrator-sub001/releases/latest"

// ReleaseInfo contains information about a GitHub release.
type ReleaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// UpdateResult contains the result of an update check.
type UpdateResult struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// CheckForUpdate queries the GitHub Releases API for a newer version.
func CheckForUpdate() (*UpdateResult, error) {
	req, err := http.NewRequest(http.MethodGet, releasesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "a2a/"+buildinfo.Version)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No releases yet
		return &UpdateResult{
			Available:      false,
			CurrentVersion: buildinfo.Version,
		}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latestVersion := strings.TrimPrefix(release.TagName, "v")
	current, err := ParseSemver(buildinfo.Version)
	if err != nil {
		// If current version is "dev" or unparseable, treat as older
		return &UpdateResult{
			Available:      true,
			CurrentVersion: buildinfo.Version,
			LatestVersion:  latestVersion,
			ReleaseURL:     release.HTMLURL,
		}, nil
	}

	latest, err := ParseSemver(latestVersion)
	if err != nil {
		return nil, fmt.Errorf("parse latest version %q: %w", latestVersion, err)
	}

	return &UpdateResult{
		Available:      current.LessThan(latest),
		CurrentVersion: buildinfo.Version,
		LatestVersion:  latestVersion,
		ReleaseURL:     release.HTMLURL,
	}, nil
}
