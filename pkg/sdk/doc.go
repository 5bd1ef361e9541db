// Package matchd provides a Go client for the matchd matching API.
//
// The client mirrors the HTTP surface: profile upserts, job postings,
// pairwise match scores, ranked listings and the connection workflow.
//
//	client, _ := matchd.New("http://localhost:8080",
//	    matchd.WithAPIKey("secret"),
//	)
//	_, _ = client.SaveTalent(ctx, talentID, matchd.TalentProfile{
//	    Name:   "Ada",
//	    Skills: []matchd.Skill{{Name: "Go"}},
//	})
//	results, _ := client.RankStartupsForTalent(ctx, talentID)
package matchd
