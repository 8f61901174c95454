// nolint
package tags

var (
	ActionSubmitProposal = []byte("submit-proposal")
	ActionVote           = []byte("vote")
	ActionAdjustStake    = []byte("adjust-stake")
	ActionQuorumReached  = []byte("quorum-reached")
	ActionRefresh        = []byte("refresh")

	Action   = "action"
	Pool     = "pool"
	Proposer = "proposer"
	Voter    = "voter"
	Target   = "target"
	Owner    = "owner"
	Winner   = "winner"
	Epoch    = "epoch"
)
