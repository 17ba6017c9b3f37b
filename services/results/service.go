// Package results persists scraped member records. Parties must be
// pre-registered before a record referencing them will store, a guard
// against silently inventing new political parties off a feed hiccup.
package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"tallyroom-backend/lib/parties"
	"tallyroom-backend/lib/scrapers/abcnews"
	"tallyroom-backend/services/results/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/results")

type Writer struct {
	db  *sql.DB
	qry *db.Queries
}

func NewWriter(database *sql.DB) Writer {
	return Writer{
		db:  database,
		qry: db.New(database),
	}
}

// SeedParties registers the canonical taxonomy. Safe to run repeatedly.
func (w Writer) SeedParties(ctx context.Context, registered []parties.Party) error {
	ctx, span := tracer.Start(ctx, "SeedParties")
	defer span.End()

	for _, party := range registered {
		err := w.qry.CreateParty(ctx, db.CreatePartyParams{
			Name:      party.Name,
			ShortCode: party.Code,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("seed party %q: %w", party.Name, err)
		}
	}
	return nil
}

// nearestParty is a diagnostic aid for unknown-party failures, it never
// changes what gets stored.
func (w Writer) nearestParty(ctx context.Context, name string) string {
	known, err := w.qry.ListParties(ctx)
	if err != nil {
		return ""
	}

	var mostSimilarity float64
	var mostSimilar string
	for _, party := range known {
		similarity := matchr.JaroWinkler(name, party.Name, false)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = party.Name
		}
	}
	if mostSimilarity < 0.75 {
		return ""
	}
	return mostSimilar
}

// Store writes one record: party lookup, electorate upsert keyed on
// (name, region), then a member row replacing any previous member for
// the electorate.
func (w Writer) Store(ctx context.Context, region string, record abcnews.MemberRecord) error {
	ctx, span := tracer.Start(ctx, "Store")
	defer span.End()

	span.SetAttributes(
		attribute.String("electorate", record.Electorate),
		attribute.String("party", record.PartyName),
	)

	party, err := w.qry.GetPartyByName(ctx, record.PartyName)
	if errors.Is(err, sql.ErrNoRows) {
		msg := fmt.Sprintf("party %q is not registered", record.PartyName)
		if suggestion := w.nearestParty(ctx, record.PartyName); suggestion != "" {
			msg = fmt.Sprintf("%s (closest known: %q)", msg, suggestion)
		}
		span.SetStatus(codes.Error, msg)
		return errors.New(msg)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer tx.Rollback()
	txqry := w.qry.WithTx(tx)

	err = txqry.UpsertElectorate(ctx, db.UpsertElectorateParams{
		Name:                  record.Electorate,
		Region:                region,
		TotalVotes:            int64(record.TotalVotes),
		MarginVotes:           int64(record.MarginVotes),
		MarginPercent:         record.MarginPercent,
		WinnerTppPercent:      record.WinnerTppPercent,
		LoserTppPercent:       record.LoserTppPercent,
		WinnerTppVotes:        int64(record.WinnerTppVotes),
		LoserTppVotes:         int64(record.LoserTppVotes),
		PreviousMarginPercent: record.PreviousMarginPercent,
		SwingPercent:          record.SwingPercent,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	electorateId, err := txqry.GetElectorateId(ctx, db.GetElectorateIdParams{
		Name:   record.Electorate,
		Region: region,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = txqry.DeleteMembersForElectorate(ctx, electorateId)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	err = txqry.CreateMember(ctx, db.CreateMemberParams{
		FirstName:    record.FirstName,
		LastName:     record.LastName,
		PartyID:      party.ID,
		ElectorateID: electorateId,
		SourceUrl:    record.SourceUrl,
		ScrapedAt:    record.ScrapedAt.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return tx.Commit()
}

// StoreAll persists each record independently, per-record failures are
// logged and counted but never abort the batch.
func (w Writer) StoreAll(ctx context.Context, region string, records []abcnews.MemberRecord) (stored, failed int) {
	ctx, span := tracer.Start(ctx, "StoreAll")
	defer span.End()

	for _, record := range records {
		err := w.Store(ctx, region, record)
		if err != nil {
			slog.WarnContext(ctx, "failed to store member record",
				"electorate", record.Electorate,
				"member", fmt.Sprintf("%s %s", record.FirstName, record.LastName),
				"err", err,
			)
			failed++
			continue
		}
		stored++
	}

	span.SetAttributes(
		attribute.Int("stored", stored),
		attribute.Int("failed", failed),
	)
	return stored, failed
}
