// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ErrUnsupportedRemote is returned for remotes that have no web host, such
// as local paths and file:// URLs.
var ErrUnsupportedRemote = errors.New("unsupported remote URL")

// WebURL converts a clone URL into the project's https URL.
//
//	git@github.com:owner/repo.git      -> https://github.com/owner/repo
//	ssh://git@github.com/owner/repo    -> https://github.com/owner/repo
//	https://user@github.com/owner/repo -> https://github.com/owner/repo
func WebURL(remote string) (string, error) {
	remote = strings.TrimSpace(remote)

	var host, repoPath string
	switch {
	case strings.Contains(remote, "://"):
		u, err := url.Parse(remote)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedRemote, err)
		}
		switch u.Scheme {
		case "https", "http", "ssh", "git", "git+ssh":
		default:
			return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedRemote, u.Scheme)
		}
		host, repoPath = u.Hostname(), u.Path
	default:
		// scp-like syntax: [user@]host:path
		at := strings.LastIndex(remote, "@")
		colon := strings.Index(remote, ":")
		if colon < 0 || colon < at {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedRemote, remote)
		}
		host, repoPath = remote[at+1:colon], remote[colon+1:]
	}

	repoPath = strings.TrimSuffix(strings.Trim(repoPath, "/"), ".git")
	if host == "" || repoPath == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedRemote, remote)
	}
	return "https://" + host + "/" + repoPath, nil
}

// BlobBaseURL returns the URL of directory subpath at ref on the remote's
// web host, ending in "/".
func BlobBaseURL(remote, ref, subpath string) (string, error) {
	web, err := WebURL(remote)
	if err != nil {
		return "", err
	}
	p := path.Join("blob", ref, strings.Trim(subpath, "/"))
	return web + "/" + p + "/", nil
}
