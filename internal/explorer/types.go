package explorer

// Block mirrors the Blockbook /api/v2/block/{id} response. Only the fields
// the report shows are decoded; pagination and version metadata are dropped
// before decoding (see IgnoredFields).
type Block struct {
	Hash              Scalar            `json:"hash"`
	PreviousBlockHash Scalar            `json:"previousBlockHash"`
	NextBlockHash     Scalar            `json:"nextBlockHash"`
	Height            Scalar            `json:"height"`
	Confirmations     Scalar            `json:"confirmations"`
	Size              Scalar            `json:"size"`
	MerkleRoot        Scalar            `json:"merkleRoot"`
	Nonce             Scalar            `json:"nonce"`
	Difficulty        Scalar            `json:"difficulty"`
	TxCount           Scalar            `json:"txCount"`
	Time              Scalar            `json:"time"`
	BlockTime         Scalar            `json:"blockTime"`
	Txs               List[Transaction] `json:"txs"`
}

// Transaction is one entry of Block.Txs. Value is the aggregate output value
// as reported by Blockbook.
type Transaction struct {
	TxID          Scalar       `json:"txid"`
	BlockHash     Scalar       `json:"blockHash"`
	BlockHeight   Scalar       `json:"blockHeight"`
	Confirmations Scalar       `json:"confirmations"`
	BlockTime     Scalar       `json:"blockTime"`
	ValueIn       Scalar       `json:"valueIn"`
	Value         Scalar       `json:"value"`
	Fees          Scalar       `json:"fees"`
	Vout          List[Output] `json:"vout"`
}

// Output is one vout entry of a transaction. Addresses is normally an array
// of strings and is only meaningful when IsAddress is true; it is kept raw
// and interpreted by AddressDisplay.
type Output struct {
	N         Scalar `json:"n"`
	Value     Scalar `json:"value"`
	IsAddress Scalar `json:"isAddress"`
	Addresses Scalar `json:"addresses"`
}

// IgnoredFields are top-level response keys removed before decoding. They
// describe the response envelope, not the block.
var IgnoredFields = []string{"page", "totalPages", "itemsOnPage", "version", "bits"}
