package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/akashic-archives/cartographer/internal/core/domain"
)

// The functions below back both the cobra commands and the interactive
// shell. Domain references are 1-based positions or topic ids.

func resolveTopic(ctx context.Context, ref string) (string, error) {
	if archiveService == nil {
		return "", errArchiveNotConfigured
	}
	entry, err := archiveService.ResolveDomain(ctx, ref)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

func showDomains(ctx context.Context, p *printer) error {
	if archiveService == nil {
		return errArchiveNotConfigured
	}
	domains, err := archiveService.ListDomains(ctx)
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}
	p.renderDomains(domains)
	return nil
}

func showTopics(ctx context.Context, p *printer) error {
	if archiveService == nil {
		return errArchiveNotConfigured
	}
	ids, err := archiveService.ListTopicIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list topics: %w", err)
	}
	p.renderTopicIDs(ids)
	return nil
}

func exploreTopic(ctx context.Context, p *printer, ref string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}
	topicID, err := resolveTopic(ctx, ref)
	if err != nil {
		return err
	}
	snap, err := archiveService.LoadSnapshot(ctx, topicID)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", topicID, err)
	}
	p.renderSnapshot(topicID, snap, analyticsService.ClustersOf(snap))
	return nil
}

func analyzeTopic(ctx context.Context, p *printer, ref string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}
	topicID, err := resolveTopic(ctx, ref)
	if err != nil {
		return err
	}
	conn, ok, err := analyticsService.MostConnected(ctx, topicID)
	if err != nil {
		return fmt.Errorf("failed to analyse %s: %w", topicID, err)
	}
	p.renderConnection(conn, ok)
	return nil
}

func showClusters(ctx context.Context, p *printer, ref string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}
	topicID, err := resolveTopic(ctx, ref)
	if err != nil {
		return err
	}
	clusters, err := analyticsService.Clusters(ctx, topicID)
	if err != nil {
		return fmt.Errorf("failed to find clusters: %w", err)
	}
	if len(clusters) == 0 {
		p.println("No concept clusters found.")
		return nil
	}
	p.renderClusters(clusters)
	return nil
}

func recommendFor(ctx context.Context, p *printer, entityID, ref string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}
	topicID, err := resolveTopic(ctx, ref)
	if err != nil {
		return err
	}
	recs, err := analyticsService.Recommend(ctx, topicID, entityID)
	if err != nil {
		return fmt.Errorf("failed to recommend: %w", err)
	}
	p.renderRecommendations(recs)
	return nil
}

func mergeTopics(ctx context.Context, p *printer, refs []string, newTopicID string) error {
	if mergeService == nil {
		return errors.New("merge service not configured")
	}
	topicIDs := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := resolveTopic(ctx, ref)
		if err != nil {
			return err
		}
		topicIDs = append(topicIDs, id)
	}
	result, err := mergeService.Merge(ctx, topicIDs, newTopicID)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	p.renderMerge(topicIDs, result)
	return nil
}

func exportTopic(ctx context.Context, p *printer, ref, formatArg string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}
	format, err := domain.ParseExportFormat(formatArg)
	if err != nil {
		return err
	}
	topicID, err := resolveTopic(ctx, ref)
	if err != nil {
		return err
	}
	key, err := exportService.Export(ctx, topicID, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	p.renderExport(topicID, format, key)
	return nil
}
