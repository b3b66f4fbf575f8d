package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/efficientgo/tools/core/pkg/testutil"
	"github.com/vcdbench/vcdbench/pkg/vcdgen"
	yaml "gopkg.in/yaml.v2"
)

func TestCheckForOmitEmptyTagOption(t *testing.T) {
	testutil.Ok(t, checkForOmitEmptyTagOption(vcdgen.DefaultSpec(vcdgen.MiB)))

	type withOmitEmpty struct {
		A int `yaml:"a"`
		B int `yaml:"b,omitempty"`
	}
	testutil.NotOk(t, checkForOmitEmptyTagOption(withOmitEmpty{}))

	type withPointer struct {
		P *int `yaml:"p"`
	}
	testutil.NotOk(t, checkForOmitEmptyTagOption(withPointer{}))

	type nested struct {
		Items []withOmitEmpty `yaml:"items"`
	}
	testutil.NotOk(t, checkForOmitEmptyTagOption(nested{Items: []withOmitEmpty{{}}}))
}

func TestGenerate_DefaultSpec(t *testing.T) {
	dir := t.TempDir()
	spec := vcdgen.DefaultSpec(100 * vcdgen.MiB)
	testutil.Ok(t, generate(spec, "spec", dir))

	b, err := ioutil.ReadFile(filepath.Join(dir, "config_spec.txt"))
	testutil.Ok(t, err)

	var got vcdgen.Spec
	testutil.Ok(t, yaml.UnmarshalStrict(b, &got))
	testutil.Ok(t, got.Validate())
	testutil.Equals(t, spec.Root.Flatten(), got.Root.Flatten())
	testutil.Equals(t, spec.Widths, got.Widths)
	testutil.Equals(t, spec.TargetBytes, got.TargetBytes)
}

func TestGenerateScopes(t *testing.T) {
	dir := t.TempDir()
	testutil.Ok(t, generateScopes(vcdgen.DefaultScopes(), dir))

	b, err := ioutil.ReadFile(filepath.Join(dir, "config_scopes.txt"))
	testutil.Ok(t, err)

	var paths []string
	testutil.Ok(t, yaml.UnmarshalStrict(b, &paths))
	testutil.Equals(t, vcdgen.DefaultScopes().Flatten(), paths)
}
