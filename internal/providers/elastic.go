package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/olivere/elastic/v7"

	"poi-finder/internal/config"
	"poi-finder/internal/geo"
	"poi-finder/internal/logger"
	"poi-finder/internal/models"
)

// ElasticPlaces - поставщик мест из индекса Elasticsearch с полем location типа geo_point
type ElasticPlaces struct {
	client *elastic.Client
	index  string
	log    *logger.Logger
}

type elasticPlace struct {
	Name         string            `json:"name"`
	Location     *elastic.GeoPoint `json:"location"`
	AddressLine1 string            `json:"address_line1"`
	AddressLine2 string            `json:"address_line2"`
	Categories   []string          `json:"categories"`
	Website      string            `json:"website"`
}

// NewElasticClient создаёт клиент Elasticsearch
func NewElasticClient(cfg *config.ElasticConfig) (*elastic.Client, error) {
	client, err := elastic.NewClient(
		elastic.SetURL(cfg.URL),
		elastic.SetSniff(cfg.Sniff),
		elastic.SetHealthcheck(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}
	return client, nil
}

// NewElasticPlaces создаёт поставщика мест поверх индекса
func NewElasticPlaces(client *elastic.Client, index string, log *logger.Logger) *ElasticPlaces {
	return &ElasticPlaces{client: client, index: index, log: log}
}

// Search выбирает места категории в радиусе с сортировкой по расстоянию
func (e *ElasticPlaces) Search(ctx context.Context, center geo.Coordinate, radiusMeters float64, category models.Category, limit int) ([]models.PlaceFeature, error) {
	query := elastic.NewBoolQuery().
		Filter(elastic.NewGeoDistanceQuery("location").
			Lat(center.Lat).
			Lon(center.Lng).
			Distance(fmt.Sprintf("%.0fm", radiusMeters))).
		Filter(elastic.NewTermQuery("categories", string(category)))

	result, err := e.client.Search().
		Index(e.index).
		Query(query).
		SortBy(elastic.NewGeoDistanceSort("location").
			Point(center.Lat, center.Lng).
			Asc().
			Unit("m").
			DistanceType("arc")).
		Size(limit).
		Do(ctx)
	if err != nil {
		e.log.WithError(err).Error("Failed to search places index")
		return nil, fmt.Errorf("failed to search index %s: %w", e.index, err)
	}

	features := make([]models.PlaceFeature, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc elasticPlace
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			e.log.WithError(err).WithField("id", hit.Id).Warn("Failed to unmarshal place document")
			continue
		}

		feature := models.PlaceFeature{
			ID:           hit.Id,
			Name:         doc.Name,
			AddressLine1: doc.AddressLine1,
			AddressLine2: doc.AddressLine2,
			Categories:   doc.Categories,
			Website:      doc.Website,
		}
		if doc.Location != nil {
			feature.Location = &geo.Coordinate{Lat: doc.Location.Lat, Lng: doc.Location.Lon}
		}
		features = append(features, feature)
	}

	return features, nil
}
