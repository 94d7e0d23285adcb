// Package transport exposes the HTTP read API.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/evmscope/evmscope-backend/internal/model"
	"github.com/evmscope/evmscope-backend/internal/verify"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	defaultPageLimit = 25
	maxPageLimit     = 100
)

type (
	// Store is the read surface of the persistence layer.
	Store interface {
		LatestBlock(ctx context.Context, network model.Network) (*model.Block, error)
		BlockByNumber(ctx context.Context, network model.Network, number uint64) (*model.Block, error)
		TransactionsForBlock(ctx context.Context, network model.Network, number uint64) ([]model.Transaction, error)
		TransactionsForAddress(ctx context.Context, network model.Network, address string, limit, offset uint64) ([]model.Transaction, error)
		InterfaceTagsFor(ctx context.Context, network model.Network, address string) ([]string, error)
		TransactionCount(ctx context.Context, network model.Network) (uint64, error)
	}

	// Ingestion is the pipeline status surface exposed through /v1/stats.
	Ingestion interface {
		LastProcessedBlock() int64
		IsRunning() bool
	}

	// Verifier accepts contract verification submissions and outcomes.
	Verifier interface {
		Accept(ctx context.Context, req verify.Request) error
		Complete(ctx context.Context, network model.Network, address string, outcome verify.Outcome) error
	}
)

// ExplorerHandler serves the explorer read API. Store read failures degrade
// to empty payloads so the API stays available while ClickHouse is down.
type ExplorerHandler struct {
	network   model.Network
	store     Store
	ingestion Ingestion
	verifier  Verifier
	logger    *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(
	network model.Network,
	store Store,
	ingestion Ingestion,
	verifier Verifier,
	logger *zap.Logger,
) *ExplorerHandler {
	return &ExplorerHandler{
		network:   network,
		store:     store,
		ingestion: ingestion,
		verifier:  verifier,
		logger:    logger,
	}
}

// Register mounts the API routes on mux.
func (h *ExplorerHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /v1/stats", h.Stats)
	mux.HandleFunc("GET /v1/blocks/latest", h.LatestBlock)
	mux.HandleFunc("GET /v1/blocks/{number}", h.BlockByNumber)
	mux.HandleFunc("GET /v1/blocks/{number}/transactions", h.BlockTransactions)
	mux.HandleFunc("GET /v1/addresses/{address}/transactions", h.AddressTransactions)
	mux.HandleFunc("GET /v1/addresses/{address}/interfaces", h.AddressInterfaces)
	mux.HandleFunc("POST /v1/contracts/{address}/verify", h.SubmitVerification)
	mux.HandleFunc("POST /v1/contracts/{address}/verify/outcome", h.CompleteVerification)
}

type blockResponse struct {
	Number     uint64  `json:"number"`
	Hash       string  `json:"hash"`
	ParentHash string  `json:"parentHash"`
	Timestamp  int64   `json:"timestamp"`
	TXCount    uint32  `json:"txCount"`
	GasUsed    uint64  `json:"gasUsed"`
	GasLimit   uint64  `json:"gasLimit"`
	BaseFee    *string `json:"baseFee,omitempty"`
}

type transactionResponse struct {
	Hash            string  `json:"hash"`
	BlockNumber     uint64  `json:"blockNumber"`
	From            string  `json:"from"`
	To              *string `json:"to,omitempty"`
	Value           string  `json:"value"`
	GasPrice        string  `json:"gasPrice"`
	GasUsed         uint64  `json:"gasUsed"`
	Success         bool    `json:"success"`
	Index           uint32  `json:"index"`
	Nonce           uint64  `json:"nonce"`
	ContractAddress *string `json:"contractAddress,omitempty"`
	Timestamp       int64   `json:"timestamp"`
}

type statsResponse struct {
	Network            string `json:"network"`
	TransactionCount   uint64 `json:"transactionCount"`
	LastProcessedBlock int64  `json:"lastProcessedBlock"`
	Ingesting          bool   `json:"ingesting"`
}

// Health reports server health.
func (h *ExplorerHandler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"})
}

// Stats reports the ingestion watermark and the stored transaction count.
func (h *ExplorerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	count, err := h.store.TransactionCount(r.Context(), h.network)
	if err != nil {
		h.logger.Warn("transaction count read failed", zap.Error(err))
		count = 0
	}

	h.writeJSON(w, statsResponse{
		Network:            string(h.network),
		TransactionCount:   count,
		LastProcessedBlock: h.ingestion.LastProcessedBlock(),
		Ingesting:          h.ingestion.IsRunning(),
	})
}

// LatestBlock returns the most recently ingested block, or an empty object
// when nothing has been ingested.
func (h *ExplorerHandler) LatestBlock(w http.ResponseWriter, r *http.Request) {
	block, err := h.store.LatestBlock(r.Context(), h.network)
	if err != nil {
		h.logger.Warn("latest block read failed", zap.Error(err))
		block = nil
	}
	if block == nil {
		h.writeJSON(w, struct{}{})
		return
	}
	h.writeJSON(w, toBlockResponse(*block))
}

// BlockByNumber returns one block by number, or an empty object when the
// block has not been ingested.
func (h *ExplorerHandler) BlockByNumber(w http.ResponseWriter, r *http.Request) {
	number, ok := h.pathNumber(w, r)
	if !ok {
		return
	}

	block, err := h.store.BlockByNumber(r.Context(), h.network, number)
	if err != nil {
		h.logger.Warn("block read failed", zap.Uint64("number", number), zap.Error(err))
		block = nil
	}
	if block == nil {
		h.writeJSON(w, struct{}{})
		return
	}
	h.writeJSON(w, toBlockResponse(*block))
}

// BlockTransactions returns the transactions of one block in index order.
func (h *ExplorerHandler) BlockTransactions(w http.ResponseWriter, r *http.Request) {
	number, ok := h.pathNumber(w, r)
	if !ok {
		return
	}

	txs, err := h.store.TransactionsForBlock(r.Context(), h.network, number)
	if err != nil {
		h.logger.Warn("block transactions read failed", zap.Uint64("number", number), zap.Error(err))
		txs = nil
	}
	h.writeJSON(w, toTransactionResponses(txs))
}

// AddressTransactions returns transactions sent from or to an address,
// newest first, paginated with limit and offset query parameters.
func (h *ExplorerHandler) AddressTransactions(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	limit, offset := pagination(r)

	txs, err := h.store.TransactionsForAddress(r.Context(), h.network, address, limit, offset)
	if err != nil {
		h.logger.Warn("address transactions read failed", zap.String("address", address), zap.Error(err))
		txs = nil
	}
	h.writeJSON(w, toTransactionResponses(txs))
}

// AddressInterfaces returns the token standards detected for a contract.
func (h *ExplorerHandler) AddressInterfaces(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")

	tags, err := h.store.InterfaceTagsFor(r.Context(), h.network, address)
	if err != nil {
		h.logger.Warn("interface tags read failed", zap.String("address", address), zap.Error(err))
		tags = nil
	}
	if tags == nil {
		tags = []string{}
	}
	h.writeJSON(w, map[string][]string{"interfaces": tags})
}

type verificationRequest struct {
	ContractName    string `json:"contractName"`
	CompilerVersion string `json:"compilerVersion"`
	Optimization    bool   `json:"optimization"`
	SourceCode      string `json:"sourceCode"`
}

// SubmitVerification accepts a contract source verification request.
func (h *ExplorerHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")

	var req verificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.verifier.Accept(r.Context(), verify.Request{
		Network:         h.network,
		Address:         address,
		ContractName:    req.ContractName,
		CompilerVersion: req.CompilerVersion,
		Optimization:    req.Optimization,
		SourceCode:      req.SourceCode,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	h.writeJSON(w, map[string]string{"status": "pending"})
}

type verificationOutcome struct {
	Success bool   `json:"success"`
	ABI     string `json:"abi"`
	Error   string `json:"error"`
}

// CompleteVerification records the compiler collaborator's outcome for a
// pending verification request.
func (h *ExplorerHandler) CompleteVerification(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")

	var outcome verificationOutcome
	if err := json.NewDecoder(r.Body).Decode(&outcome); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.verifier.Complete(r.Context(), h.network, address, verify.Outcome{
		Success: outcome.Success,
		ABI:     outcome.ABI,
		Error:   outcome.Error,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, map[string]string{"status": "recorded"})
}

func (h *ExplorerHandler) pathNumber(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	number, err := strconv.ParseUint(r.PathValue("number"), 10, 64)
	if err != nil {
		http.Error(w, "invalid block number", http.StatusBadRequest)
		return 0, false
	}
	return number, true
}

func (h *ExplorerHandler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

func pagination(r *http.Request) (limit, offset uint64) {
	limit = defaultPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}

func toBlockResponse(block model.Block) blockResponse {
	resp := blockResponse{
		Number:     block.Number,
		Hash:       block.Hash,
		ParentHash: block.ParentHash,
		Timestamp:  block.Timestamp.Unix(),
		TXCount:    block.TXCount,
		GasUsed:    block.GasUsed,
		GasLimit:   block.GasLimit,
	}
	if block.BaseFee != nil {
		baseFee := block.BaseFee.String()
		resp.BaseFee = &baseFee
	}
	return resp
}

func toTransactionResponses(txs []model.Transaction) []transactionResponse {
	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		value := "0"
		if tx.Value != nil {
			value = tx.Value.String()
		}
		gasPrice := "0"
		if tx.GasPrice != nil {
			gasPrice = tx.GasPrice.String()
		}
		resp = append(resp, transactionResponse{
			Hash:            tx.Hash,
			BlockNumber:     tx.BlockNumber,
			From:            tx.From,
			To:              tx.To,
			Value:           value,
			GasPrice:        gasPrice,
			GasUsed:         tx.GasUsed,
			Success:         tx.Success,
			Index:           tx.Index,
			Nonce:           tx.Nonce,
			ContractAddress: tx.ContractAddress,
			Timestamp:       tx.Timestamp.Unix(),
		})
	}
	return resp
}
