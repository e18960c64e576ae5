package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/userserver/internal/client/client"
	pb "github.com/dmitrijs2005/userserver/internal/proto"
)

// List prints one page of accounts. Filters come as key=value arguments.
func (a *App) List(ctx context.Context, args []string) error {
	kv, err := parseKeyValues(args)
	if err != nil {
		return err
	}

	q := client.IndexQuery{IDs: kv["id"], Email: kv["email"], Nickname: kv["nickname"]}
	if q.Page, err = optionalInt(kv, "page"); err != nil {
		return err
	}
	if q.Limit, err = optionalInt(kv, "limit"); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.List(ctx, q)
	if err != nil {
		return err
	}

	a.printRecords(resp.Record)
	if m := resp.Meta; m != nil {
		fmt.Fprintf(a.out, "page %d of %d, %d per page, %d total\n", m.CurrentPage, m.TotalPage, m.Limit, m.Total)
	}
	return nil
}

// Show prints a single account.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid id %q", args[0])
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.Show(ctx, id)
	if err != nil {
		return err
	}

	a.printRecords([]*pb.UserRecord{u})
	return nil
}

// Profile edits a profile. Empty answers leave the field as it is.
func (a *App) Profile(ctx context.Context) error {
	rawID, err := getSimpleText(a.reader, "Profile id", a.out)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid id %q", rawID)
	}

	req := &pb.UserProfileUpdateRequest{Id: id}

	if req.Nickname, err = getSimpleText(a.reader, "Nickname (empty to keep)", a.out); err != nil {
		return err
	}

	rawGender, err := getSimpleText(a.reader, "Gender: 1 male, 2 female (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if rawGender != "" {
		g, err := strconv.ParseInt(rawGender, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid gender %q", rawGender)
		}
		req.Gender = int32(g)
	}

	if req.Birthday, err = getSimpleText(a.reader, "Birthday as 2006-01-02 15:04:05 (empty to keep)", a.out); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Profile %d updated: nickname=%s gender=%d birthday=%s\n", resp.Id, resp.Nickname, resp.Gender, resp.Birthday)
	return nil
}

func (a *App) printRecords(records []*pb.UserRecord) {
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No accounts")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNICKNAME\tGENDER\tBIRTHDAY")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Id, r.Email, r.Nickname, genderName(r.Gender), r.Birthday)
	}
	_ = tw.Flush()
}

func genderName(g int32) string {
	switch g {
	case 1:
		return "male"
	case 2:
		return "female"
	default:
		return "-"
	}
}

func optionalInt(kv map[string]string, key string) (int64, error) {
	raw, ok := kv[key]
	if !ok || raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}
