// spacectl is a terminal frontend for the spaces API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renaldy/spaces-api/internal/client"
	"github.com/renaldy/spaces-api/internal/domain"
)

const usage = `Usage: spacectl [-addr URL] <command> [arguments]

Commands:
  list                                    list all spaces
  get <id>                                show one space
  create -name NAME -capacity N           create a space
  update <id> [-name NAME] [-capacity N]  update fields of a space
  delete <id>                             delete a space
  health                                  check service health
`

func main() {
	addr := flag.String("addr", envOr("SPACES_ADDR", "http://localhost:8080"), "API base URL")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api := client.NewCached(client.New(*addr))
	ctx := context.Background()

	var err error
	switch args[0] {
	case "list":
		err = runList(ctx, api)
	case "get":
		err = runGet(ctx, api, args[1:])
	case "create":
		err = runCreate(ctx, api, args[1:])
	case "update":
		err = runUpdate(ctx, api, args[1:])
	case "delete":
		err = runDelete(ctx, api, args[1:])
	case "health":
		err = runHealth(ctx, api)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runList(ctx context.Context, api *client.CachedClient) error {
	spaces, err := api.ListSpaces(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCAPACITY\tCREATED")
	for _, s := range spaces {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Capacity, s.CreatedAt)
	}
	return w.Flush()
}

func runGet(ctx context.Context, api *client.CachedClient, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: spacectl get <id>")
	}

	space, err := api.GetSpace(ctx, args[0])
	if err != nil {
		return err
	}
	printSpace(space)
	return nil
}

func runCreate(ctx context.Context, api *client.CachedClient, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "space name")
	capacity := fs.Float64("capacity", 0, "space capacity")
	fs.Parse(args)

	space, err := api.CreateSpace(ctx, domain.SpaceCreate{Name: *name, Capacity: *capacity})
	if err != nil {
		return err
	}
	printSpace(space)
	return nil
}

func runUpdate(ctx context.Context, api *client.CachedClient, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: spacectl update <id> [-name NAME] [-capacity N]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", "", "space name")
	capacity := fs.Float64("capacity", 0, "space capacity")
	fs.Parse(args[1:])

	// Only flags the user actually set become part of the patch.
	var input domain.SpaceUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			input.Name = name
		case "capacity":
			input.Capacity = capacity
		}
	})

	space, err := api.UpdateSpace(ctx, id, input)
	if err != nil {
		return err
	}
	printSpace(space)
	return nil
}

func runDelete(ctx context.Context, api *client.CachedClient, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: spacectl delete <id>")
	}

	if err := api.DeleteSpace(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("deleted", args[0])
	return nil
}

func runHealth(ctx context.Context, api *client.CachedClient) error {
	status, err := api.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s (%s)\n", status.Status, status.Message, status.Timestamp)
	return nil
}

func printSpace(s *domain.SpaceDTO) {
	fmt.Printf("id:        %s\n", s.ID)
	fmt.Printf("name:      %s\n", s.Name)
	fmt.Printf("capacity:  %d\n", s.Capacity)
	fmt.Printf("createdAt: %s\n", s.CreatedAt)
	fmt.Printf("updatedAt: %s\n", s.UpdatedAt)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
