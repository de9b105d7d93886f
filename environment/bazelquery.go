package environment

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/viant/javaimports/info"
)

// BazelDependency is a source file or an archive reached from the target owning the file being fixed
type BazelDependency struct {
	Kind info.Kind
	Path string
}

// QueryResults is the parsed output of a minrank deps query
type QueryResults struct {
	Sources []BazelDependency
	Jars    []BazelDependency
}

// sources of the workspace itself, external repository sources never match
var sourceLabel = regexp.MustCompile(`^//(?P<package>.*):(?P<path>.+)\.java$`)

// jarLabel maps an archive label to its location under the external repositories folder
type jarLabel struct {
	pattern  *regexp.Regexp
	location func(external string, match []string) string
}

var (
	moduleWithPin = jarLabel{
		pattern: regexp.MustCompile(`^@@rules_jvm_external~~maven~(\w+)//file:(.+)\.jar$`),
		location: func(external string, m []string) string {
			return filepath.Join(external, "rules_jvm_external~~maven~"+m[1], "file", m[2]+".jar")
		},
	}
	moduleNoPin = jarLabel{
		pattern: regexp.MustCompile(`^@maven//:v1/(.+)\.jar$`),
		location: func(external string, m []string) string {
			return filepath.Join(external, "rules_jvm_external~~maven~maven", "v1", m[1]+".jar")
		},
	}
	workspaceNoPin = jarLabel{
		pattern: moduleNoPin.pattern,
		location: func(external string, m []string) string {
			return filepath.Join(external, "maven", "v1", m[1]+".jar")
		},
	}
	workspaceWithPin = jarLabel{
		pattern: regexp.MustCompile(`^@(\w+)//file:(.+)\.jar$`),
		location: func(external string, m []string) string {
			return filepath.Join(external, m[1], "file", m[2]+".jar")
		},
	}
)

func jarLabels(module bool) []jarLabel {
	if module {
		return []jarLabel{moduleWithPin, moduleNoPin}
	}
	return []jarLabel{workspaceWithPin, workspaceNoPin}
}

// ParseQueryResults reads `bazel query --output=minrank` lines. Sources up to rank 2 are direct
// since a java_library target sits at rank 1 and its files at rank 2. Archives sharing the rank
// of the first archive listed are direct, deeper ones are transitive.
func ParseQueryResults(r io.Reader, workspace, outputBase string, module bool) (*QueryResults, error) {
	external := filepath.Join(outputBase, "external")
	labels := jarLabels(module)
	ret := &QueryResults{}
	directJarRank := -1
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rank := -1
		if idx := strings.IndexByte(line, ' '); idx != -1 {
			value, err := strconv.Atoi(line[:idx])
			if err != nil {
				return nil, fmt.Errorf("invalid rank in %q: %w", line, err)
			}
			rank, line = value, line[idx+1:]
		}

		if m := sourceLabel.FindStringSubmatch(line); m != nil {
			kind := info.Transitive
			if rank <= 2 {
				kind = info.Direct
			}
			path := filepath.Join(workspace, filepath.FromSlash(m[1]), filepath.FromSlash(m[2])+".java")
			ret.Sources = append(ret.Sources, BazelDependency{Kind: kind, Path: path})
			continue
		}

		for _, label := range labels {
			m := label.pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if directJarRank == -1 {
				directJarRank = rank
			}
			kind := info.Transitive
			if rank == directJarRank {
				kind = info.Direct
			}
			ret.Jars = append(ret.Jars, BazelDependency{Kind: kind, Path: label.location(external, m)})
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// jarGroup infers a maven group from a repository layout path, group/artifact/version/file.jar
func jarGroup(external, path string) string {
	rel, err := filepath.Rel(external, path)
	if err != nil {
		return ""
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for k, segment := range segments {
		if segment != "v1" {
			continue
		}
		layout := segments[k+1:]
		if len(layout) < 4 || layout[0] == "http" || layout[0] == "https" {
			return ""
		}
		return strings.Join(layout[:len(layout)-3], ".")
	}
	return ""
}
