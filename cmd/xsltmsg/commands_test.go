package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loopcontext/xsltmsg"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"substitutes", []string{"render", "--locale", "C", "ER_NO_NAME_ATTRIB", "xsl:key"}, "xsl:key must have a name attribute.\n"},
		{"verbatim", []string{"render", "--locale", "C", "ER_NO_NAME_ATTRIB"}, "{0} must have a name attribute.\n"},
		{"absent_argument", []string{"render", "--locale", "C", "ER_CANNOT_ADD", "-", "b"}, "Can not add  to b\n"},
		{"localized", []string{"render", "--locale", "ja", "ER_CANNOT_ADD", "a", "b"}, "a を b に追加できません\n"},
		{"xpath_warning", []string{"render", "--domain", "xpath", "--locale", "C", "--warning", "ER_UNKNOWN_AXIS", "up"}, "unknown axis: up\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_BadCode(t *testing.T) {
	got, stderr, err := run(t, "render", "--locale", "C", "ER_NOT_A_CODE")
	if !errors.Is(err, xsltmsg.ErrBadCode) {
		t.Fatalf("Execute() error = %v, want ErrBadCode", err)
	}
	if got != "Parameter to createMessage was out of bounds\n" {
		t.Errorf("stdout = %q", got)
	}
	if !strings.Contains(stderr, "unknown diagnostic code") {
		t.Errorf("stderr should carry the warn log, got %q", stderr)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"zh_TW", "xslt_zh_TW\n"},
		{"zh_HK", "xslt\n"},
		{"ko_KR", "xslt_ko\n"},
		{"C", "xslt\n"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, _, err := run(t, "resolve", "--locale", tt.locale)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolve_Env(t *testing.T) {
	t.Setenv("XSLTMSG_LOCALE", "de")
	t.Setenv("XSLTMSG_DOMAIN", "xpath")
	got, _, err := run(t, "resolve")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != "xpath_de\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestCodes(t *testing.T) {
	got, _, err := run(t, "codes", "--locale", "C")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	codes := strings.Split(strings.TrimSpace(got), "\n")
	if len(codes) < 3 || codes[0] != xsltmsg.BadCode {
		t.Errorf("codes = %v", codes)
	}
}

func TestCatalogDir(t *testing.T) {
	dir := t.TempDir()
	override := "domain: xslt\nmessages:\n  ER_NO_NAME_ATTRIB: \"overridden {0}\"\n  BAD_CODE: b\n  FORMAT_FAILED: f\n"
	if err := os.WriteFile(filepath.Join(dir, "xslt_ja.yaml"), []byte(override), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	toml := "ER_UNKNOWN_AXIS = \"axe inconnu : {0}\"\nBAD_CODE = \"b\"\nFORMAT_FAILED = \"f\"\n"
	if err := os.WriteFile(filepath.Join(dir, "xpath_fr.toml"), []byte(toml), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, _, err := run(t, "render", "--catalog-dir", dir, "--locale", "ja", "ER_NO_NAME_ATTRIB", "x")
	if err != nil || got != "overridden x\n" {
		t.Errorf("yaml override = %q, %v", got, err)
	}
	got, _, err = run(t, "render", "--catalog-dir", dir, "--domain", "xpath", "--locale", "fr", "ER_UNKNOWN_AXIS", "x")
	if err != nil || got != "axe inconnu : x\n" {
		t.Errorf("toml override = %q, %v", got, err)
	}
	got, _, err = run(t, "resolve", "--catalog-dir", dir, "--locale", "ko")
	if err != nil || got != "xslt_ko\n" {
		t.Errorf("embedded fallthrough = %q, %v", got, err)
	}
}

func TestUnknownDomain(t *testing.T) {
	_, _, err := run(t, "resolve", "--domain", "xquery", "--locale", "C")
	if !errors.Is(err, xsltmsg.ErrCatalogUnavailable) {
		t.Errorf("Execute() error = %v, want ErrCatalogUnavailable", err)
	}
}

func TestCheck(t *testing.T) {
	for _, domain := range []string{"xslt", "xpath"} {
		got, _, err := run(t, "check", "--domain", domain)
		if err != nil {
			t.Fatalf("check %s: %v\n%s", domain, err, got)
		}
		if !strings.HasSuffix(got, "9 catalog(s) checked\n") {
			t.Errorf("check %s stdout = %q", domain, got)
		}
	}
}

func TestCheck_Problems(t *testing.T) {
	dir := t.TempDir()
	broken := "domain: xslt\nmessages:\n  ER_CANNOT_ADD: \"{0}\"\n  BAD_CODE: b\n  FORMAT_FAILED: f\n"
	if err := os.WriteFile(filepath.Join(dir, "xslt_pt.yaml"), []byte(broken), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, _, err := run(t, "check", "--catalog-dir", dir)
	if err == nil {
		t.Fatal("check should fail on an argument count mismatch")
	}
	if !strings.Contains(got, "xslt_pt ER_CANNOT_ADD: argument count (1, base has 2)") {
		t.Errorf("stdout = %q", got)
	}
	if !strings.Contains(got, "xslt_pt ER_NO_NAME_ATTRIB: missing") {
		t.Errorf("stdout should list missing codes, got %q", got)
	}
}

func TestCheck_GoI18nCatalogs(t *testing.T) {
	dir := t.TempDir()
	toml := "ER_UNKNOWN_AXIS = \"axe inconnu\"\nBAD_CODE = \"b\"\nFORMAT_FAILED = \"f\"\n"
	if err := os.WriteFile(filepath.Join(dir, "xpath_br.toml"), []byte(toml), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	json := `{"ER_UNKNOWN_AXIS": "{0}", "BAD_CODE": "b", "FORMAT_FAILED": "f"}`
	if err := os.WriteFile(filepath.Join(dir, "xpath_cy.json"), []byte(json), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, _, err := run(t, "check", "--domain", "xpath", "--catalog-dir", dir)
	if err == nil {
		t.Fatal("check should fail on the toml argument count mismatch")
	}
	if !strings.Contains(got, "xpath_br ER_UNKNOWN_AXIS: argument count (0, base has 1)") {
		t.Errorf("stdout = %q", got)
	}
	if strings.Contains(got, "xpath_cy ER_UNKNOWN_AXIS") {
		t.Errorf("the json catalog matches its base and should not be reported: %q", got)
	}
	if !strings.Contains(got, "xpath_cy ER_CURRENT_TAKES_NO_ARGS: missing") {
		t.Errorf("the json catalog should be checked too: %q", got)
	}
}
