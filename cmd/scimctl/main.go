// Command scimctl drives provisioning operations against one realm's SCIM
// endpoint. It is the admin and integration companion to the server binary:
//
//	scimctl -address localhost:8080 -realm master -token $TOKEN list Users
//	scimctl -realm master -token $TOKEN -body @user.json create Users
//	scimctl -realm master -token $TOKEN delete Users 42
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/idmhub/scim-bridge/internal/adapter"
	"github.com/idmhub/scim-bridge/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// queryFlags collects repeatable -query name=value pairs into url.Values.
// It implements the flag.Value interface.
type queryFlags struct {
	values url.Values
}

func (q *queryFlags) String() string {
	if q.values == nil {
		return ""
	}
	return q.values.Encode()
}

func (q *queryFlags) Set(s string) error {
	name, value, found := strings.Cut(s, "=")
	if !found || name == "" {
		return errors.New("need query parameter in a form `name=value`")
	}

	if q.values == nil {
		q.values = url.Values{}
	}
	q.values.Add(name, value)
	return nil
}

func main() {
	log := logger.NewLogger("scimctl")

	var (
		address string
		realm   string
		token   string
		body    string
		timeout time.Duration
		query   queryFlags
		version bool
	)

	flag.StringVar(&address, "address", "localhost:8080", "Bridge address host:port")
	flag.StringVar(&realm, "realm", "master", "Realm whose SCIM endpoint to target")
	flag.StringVar(&token, "token", "", "Bearer token")
	flag.StringVar(&body, "body", "", "Request body: inline JSON, @file, or - for stdin")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	flag.Var(&query, "query", "Query parameter name=value (repeatable)")
	flag.BoolVar(&version, "version", false, "Print build info and exit")
	flag.Parse()

	if version {
		printBuildInfo()
		return
	}

	command := flag.Arg(0)
	resourceType := flag.Arg(1)
	id := flag.Arg(2)
	if command == "" || resourceType == "" {
		fmt.Fprintln(os.Stderr, "usage: scimctl [flags] <create|get|list|replace|patch|delete> <resourceType> [id]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	client, err := adapter.NewHTTPScimClient(address, realm, timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating scim client")
	}
	client.SetToken(token)

	bodyContent, err := resolveBody(body, os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading request body")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	output, err := run(ctx, client, command, resourceType, id, bodyContent, query.values)
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}

	if output != "" {
		fmt.Println(output)
	}
}

// run dispatches one CLI command to the SCIM client.
func run(ctx context.Context, client adapter.ScimClient, command, resourceType, id, body string, query url.Values) (string, error) {
	switch command {
	case "create":
		return client.Create(ctx, resourceType, body)
	case "get":
		if id == "" {
			return "", errors.New("get needs a resource id")
		}
		return client.Get(ctx, resourceType, id)
	case "list":
		return client.List(ctx, resourceType, query)
	case "replace":
		if id == "" {
			return "", errors.New("replace needs a resource id")
		}
		return client.Replace(ctx, resourceType, id, body)
	case "patch":
		if id == "" {
			return "", errors.New("patch needs a resource id")
		}
		return client.Patch(ctx, resourceType, id, body)
	case "delete":
		if id == "" {
			return "", errors.New("delete needs a resource id")
		}
		return "", client.Delete(ctx, resourceType, id)
	default:
		return "", fmt.Errorf("unknown command %q", command)
	}
}

// resolveBody turns the -body flag value into the request body: "-" reads
// stdin, "@path" reads a file, anything else is taken literally.
func resolveBody(body string, stdin io.Reader) (string, error) {
	switch {
	case body == "-":
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(content), nil
	case strings.HasPrefix(body, "@"):
		content, err := os.ReadFile(strings.TrimPrefix(body, "@"))
		if err != nil {
			return "", fmt.Errorf("error reading body file: %w", err)
		}
		return string(content), nil
	default:
		return body, nil
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
