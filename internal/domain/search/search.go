package search

import (
	"context"
	"errors"
	"path"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/influencerflow/backend/pkg/logger"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
)

const InfluencerDoc = "influencer"

const (
	fieldRatePerPost = "rate_per_post"
	fieldHasRate     = "has_rate"
)

type InfluencerData struct {
	Name        string   `json:"name"`
	Username    string   `json:"username"`
	Bio         string   `json:"bio"`
	Location    string   `json:"location"`
	Categories  []string `json:"categories"`
	Platforms   []string `json:"platforms"`
	Languages   []string `json:"languages"`
	RatePerPost float64  `json:"rate_per_post"`
	HasRate     bool     `json:"has_rate"`
}

// Hit is a matched document and its relevance score. Hits are returned in
// descending score order.
type Hit struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type bleveIndex struct {
	logger   logger.Logger
	indexDir string
	indexes  *xsync.MapOf[string, bleve.Index]

	openMutex sync.Mutex
}

// NewBleveIndex opens indexes under the configured directory. An empty
// directory keeps every index in memory.
func NewBleveIndex(ctx context.Context) *bleveIndex {
	return &bleveIndex{
		logger:   xcontext.Logger(ctx),
		indexDir: xcontext.Configs(ctx).SearchServer.IndexDir,
		indexes:  xsync.NewMapOf[bleve.Index](),
	}
}

func (i *bleveIndex) Index(document, id string, data InfluencerData) error {
	index, err := i.getIndexByDocument(document)
	if err != nil {
		return err
	}

	return index.Index(id, data)
}

func (i *bleveIndex) Delete(document, id string) error {
	index, err := i.getIndexByDocument(document)
	if err != nil {
		return err
	}

	return index.Delete(id)
}

// SearchInfluencers ranks influencers matching the free-text query. When
// maxBudget is set, influencers whose rate per post exceeds it are excluded;
// influencers without a known rate are kept.
func (i *bleveIndex) SearchInfluencers(q string, maxBudget *float64, offset, limit int) ([]Hit, error) {
	index, err := i.getIndexByDocument(InfluencerDoc)
	if err != nil {
		return nil, err
	}

	var searchQuery query.Query = bleve.NewMatchQuery(q)
	if maxBudget != nil {
		inclusive := true
		withinBudget := bleve.NewNumericRangeInclusiveQuery(nil, maxBudget, nil, &inclusive)
		withinBudget.SetField(fieldRatePerPost)

		noRate := bleve.NewBoolFieldQuery(false)
		noRate.SetField(fieldHasRate)

		searchQuery = bleve.NewConjunctionQuery(
			searchQuery,
			bleve.NewDisjunctionQuery(withinBudget, noRate),
		)
	}

	req := bleve.NewSearchRequestOptions(searchQuery, limit, offset, false)
	searchResults, err := index.Search(req)
	if err != nil {
		return nil, err
	}

	hits := []Hit{}
	for _, match := range searchResults.Hits {
		hits = append(hits, Hit{ID: match.ID, Score: match.Score})
	}

	return hits, nil
}

func (i *bleveIndex) Close() {
	i.logger.Infof("Closing all indexers...")

	i.indexes.Range(func(document string, index bleve.Index) bool {
		if err := index.Close(); err != nil {
			i.logger.Errorf("Cannot close indexer %s: %v", document, err)
		}

		return true
	})

	i.logger.Infof("Closing all indexers...done")
}

func (i *bleveIndex) getIndexByDocument(document string) (bleve.Index, error) {
	if index, ok := i.indexes.Load(document); ok {
		return index, nil
	}

	i.openMutex.Lock()
	defer i.openMutex.Unlock()

	if index, ok := i.indexes.Load(document); ok {
		return index, nil
	}

	i.logger.Infof("A new document index is added: %s", document)
	index, err := i.openIndex(document)
	if err != nil {
		return nil, err
	}

	i.indexes.Store(document, index)
	return index, nil
}

func (i *bleveIndex) openIndex(document string) (bleve.Index, error) {
	if i.indexDir == "" {
		return bleve.NewMemOnly(bleve.NewIndexMapping())
	}

	indexPath := path.Join(i.indexDir, document)
	index, err := bleve.New(indexPath, bleve.NewIndexMapping())
	if err != nil {
		if !errors.Is(err, bleve.ErrorIndexPathExists) {
			return nil, err
		}

		return bleve.Open(indexPath)
	}

	return index, nil
}
