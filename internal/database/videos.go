package database

import (
	"context"
	"fmt"

	"video-player/internal/catalog"
	"video-player/internal/logging"
)

// ImportVideos replaces the stored catalog with records, keeping their order.
// The replacement happens in a single transaction.
func (d *Database) ImportVideos(ctx context.Context, records []catalog.VideoRecord) (err error) {
	done := observeQuery("import_videos")
	defer func() { done(err) }()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error("failed to rollback import: %v", rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM video_tags"); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM videos"); err != nil {
		return fmt.Errorf("failed to clear videos: %w", err)
	}

	videoStmt, err := tx.PrepareContext(ctx, "INSERT INTO videos (id, title, position) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare video insert: %w", err)
	}
	defer videoStmt.Close()

	tagStmt, err := tx.PrepareContext(ctx, "INSERT INTO video_tags (video_id, position, tag) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare tag insert: %w", err)
	}
	defer tagStmt.Close()

	for i, r := range records {
		if _, err = videoStmt.ExecContext(ctx, r.ID, r.Title, i); err != nil {
			return fmt.Errorf("failed to insert video %s: %w", r.ID, err)
		}
		for j, tag := range r.Tags {
			if _, err = tagStmt.ExecContext(ctx, r.ID, j, tag); err != nil {
				return fmt.Errorf("failed to insert tag %s for video %s: %w", tag, r.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	logging.Info("Imported %d videos into %s", len(records), d.dbPath)
	return nil
}

// LoadVideos returns every stored video in import order with its tags.
func (d *Database) LoadVideos(ctx context.Context) (records []catalog.VideoRecord, err error) {
	done := observeQuery("load_videos")
	defer func() { done(err) }()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(ctx, `
		SELECT v.id, v.title, t.tag
		FROM videos v
		LEFT JOIN video_tags t ON t.video_id = v.id
		ORDER BY v.position, t.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logging.Warn("failed to close rows: %v", closeErr)
		}
	}()

	for rows.Next() {
		var id, title string
		var tag *string
		if err = rows.Scan(&id, &title, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}

		if len(records) == 0 || records[len(records)-1].ID != id {
			records = append(records, catalog.VideoRecord{ID: id, Title: title, Tags: []string{}})
		}
		if tag != nil {
			last := &records[len(records)-1]
			last.Tags = append(last.Tags, *tag)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadLibrary loads the stored catalog into an in-memory Library.
func (d *Database) LoadLibrary(ctx context.Context) (*catalog.Library, error) {
	records, err := d.LoadVideos(ctx)
	if err != nil {
		return nil, err
	}
	logging.Info("Loaded %d videos from database", len(records))
	return catalog.NewLibrary(records), nil
}
