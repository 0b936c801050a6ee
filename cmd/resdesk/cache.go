package main

import (
	"fmt"
	"slices"

	"github.com/fwojciec/resdesk"
	"github.com/fwojciec/resdesk/goquery"
)

// homePage is the page scanned for assets by cache install --discover.
const homePage = "index.html"

// Run executes the cache install command.
func (c *CacheInstallCmd) Run(deps *Dependencies) error {
	paths := slices.Clone(c.Paths)
	if len(paths) == 0 {
		paths = slices.Clone(resdesk.OfflineAssets)
	}

	if c.Discover {
		page, err := deps.Pages.ReadAsset(deps.Ctx, homePage)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
			return err
		}
		found, err := goquery.PageAssets(string(page), homePage)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
			return err
		}
		for _, p := range found {
			if !slices.Contains(paths, p) {
				paths = append(paths, p)
			}
		}
	}

	manifest, err := deps.Cache.Install(deps.Ctx, c.Name, paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Installed %s (%d assets)\n", manifest.Name, len(manifest.Assets))
	return nil
}

// Run executes the cache activate command.
func (c *CacheActivateCmd) Run(deps *Dependencies) error {
	deleted, err := deps.Cache.Activate(deps.Ctx, c.Keep)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		return err
	}

	for _, name := range deleted {
		fmt.Fprintf(deps.Stdout, "Deleted %s\n", name)
	}
	fmt.Fprintf(deps.Stdout, "Active cache: %s\n", c.Keep)
	return nil
}

// Run executes the cache list command.
func (c *CacheListCmd) Run(deps *Dependencies) error {
	keys, err := deps.Cache.Keys(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		return err
	}

	if len(keys) == 0 {
		fmt.Fprintln(deps.Stdout, "No caches installed. Use 'resdesk cache install' to create one.")
		return nil
	}
	for _, k := range keys {
		fmt.Fprintln(deps.Stdout, k)
	}
	return nil
}

// Run executes the cache verify command.
func (c *CacheVerifyCmd) Run(deps *Dependencies) error {
	manifest, err := deps.Cache.Verify(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", resdesk.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %d assets OK\n", manifest.Name, len(manifest.Assets))
	return nil
}
