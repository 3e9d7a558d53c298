package search

// RPCService is the receiver registered on the search RPC server. Only its
// exported methods are reachable remotely, so index lifecycle stays local.
type RPCService struct {
	index *bleveIndex
}

func NewRPCService(index *bleveIndex) *RPCService {
	return &RPCService{index: index}
}

func (s *RPCService) Index(document, id string, data InfluencerData) error {
	return s.index.Index(document, id, data)
}

func (s *RPCService) Delete(document, id string) error {
	return s.index.Delete(document, id)
}

func (s *RPCService) SearchInfluencers(q string, maxBudget *float64, offset, limit int) ([]Hit, error) {
	return s.index.SearchInfluencers(q, maxBudget, offset, limit)
}
