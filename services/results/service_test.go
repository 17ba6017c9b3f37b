package results

import (
	"context"
	"testing"
	"time"

	"tallyroom-backend/lib/parties"
	"tallyroom-backend/lib/scrapers/abcnews"
	"tallyroom-backend/lib/testutil"
	"tallyroom-backend/lib/timezone"
	"tallyroom-backend/services/results/db"

	"github.com/stretchr/testify/require"
)

func memberRecord() abcnews.MemberRecord {
	return abcnews.MemberRecord{
		FirstName:        "Jane",
		LastName:         "Smith",
		PartyName:        "Australian Labor Party",
		PartyCode:        "ALP",
		Electorate:       "Melbourne",
		TotalVotes:       98765,
		MarginVotes:      5000,
		MarginPercent:    4.3,
		WinnerTppPercent: 54.3,
		LoserTppPercent:  45.7,
		WinnerTppVotes:   30000,
		LoserTppVotes:    25000,
		SwingPercent:     2.1,
		SourceUrl:        "https://www.abc.net.au/dat/news/elections/2022/federal/results.json",
		ScrapedAt:        timezone.Now(),
	}
}

func TestWriter(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results",
		DbSchema: db.Schema,
	})
	defer cleanup()

	writer := NewWriter(setup.DB)
	canon := parties.NewCanonicalizer(parties.Default())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	err := writer.SeedParties(ctx, canon.Registered())
	require.NoError(t, err)
	// seeding twice must not fail or duplicate
	err = writer.SeedParties(ctx, canon.Registered())
	require.NoError(t, err)

	err = writer.Store(ctx, "federal", memberRecord())
	require.NoError(t, err)

	qry := db.New(setup.DB)
	members, err := qry.ListMembersByRegion(ctx, "federal")
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, "Jane", members[0].FirstName)
	require.Equal(t, "Smith", members[0].LastName)

	electorate, err := qry.GetElectorate(ctx, db.GetElectorateParams{
		Name:   "Melbourne",
		Region: "federal",
	})
	require.NoError(t, err)
	require.EqualValues(t, 98765, electorate.TotalVotes)
	require.EqualValues(t, 5000, electorate.MarginVotes)
	require.Equal(t, 4.3, electorate.MarginPercent)
	require.Equal(t, 54.3, electorate.WinnerTppPercent)
}

func TestWriterReplacesMemberOnRescrape(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results",
		DbSchema: db.Schema,
	})
	defer cleanup()

	writer := NewWriter(setup.DB)
	ctx := context.Background()

	err := writer.SeedParties(ctx, parties.NewCanonicalizer(parties.Default()).Registered())
	require.NoError(t, err)

	require.NoError(t, writer.Store(ctx, "federal", memberRecord()))

	successor := memberRecord()
	successor.FirstName = "John"
	successor.LastName = "Citizen"
	successor.PartyName = "Australian Greens"
	require.NoError(t, writer.Store(ctx, "federal", successor))

	members, err := db.New(setup.DB).ListMembersByRegion(ctx, "federal")
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, "John", members[0].FirstName)
}

func TestWriterRejectsUnregisteredParty(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results",
		DbSchema: db.Schema,
	})
	defer cleanup()

	writer := NewWriter(setup.DB)
	ctx := context.Background()

	err := writer.SeedParties(ctx, parties.NewCanonicalizer(parties.Default()).Registered())
	require.NoError(t, err)

	record := memberRecord()
	record.PartyName = "Australian Labour Party"
	err = writer.Store(ctx, "federal", record)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not registered")
	// near-miss labels get a hint at the closest registered party
	require.Contains(t, err.Error(), "Australian Labor Party")

	members, err := db.New(setup.DB).ListMembersByRegion(ctx, "federal")
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestStoreAllCountsFailures(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results",
		DbSchema: db.Schema,
	})
	defer cleanup()

	writer := NewWriter(setup.DB)
	ctx := context.Background()

	err := writer.SeedParties(ctx, parties.NewCanonicalizer(parties.Default()).Registered())
	require.NoError(t, err)

	good := memberRecord()
	bad := memberRecord()
	bad.Electorate = "Sydney"
	bad.PartyName = "Party of Nowhere"

	stored, failed := writer.StoreAll(ctx, "federal", []abcnews.MemberRecord{good, bad})
	require.Equal(t, 1, stored)
	require.Equal(t, 1, failed)
}
