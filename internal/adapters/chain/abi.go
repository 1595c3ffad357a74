package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Contract ABIs, restricted to the entry points this client exercises. The
// campaign shape is the latest one: actualBalance in the info tuple plus
// the peak-balance checkpoint views.

const campaignFactoryABI = `[
	{"type":"function","name":"createCampaign","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"string"},{"name":"_target","type":"uint256"},{"name":"_durationInSeconds","type":"uint256"},{"name":"_ipfsHash","type":"string"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"getDeployedCampaigns","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address[]"}]}
]`

const campaignABI = `[
	{"type":"function","name":"getCampaignInfo","stateMutability":"view","inputs":[],"outputs":[{"name":"_owner","type":"address"},{"name":"_name","type":"string"},{"name":"_target","type":"uint256"},{"name":"_raised","type":"uint256"},{"name":"_actualBalance","type":"uint256"},{"name":"_timeRemaining","type":"uint256"},{"name":"_status","type":"uint8"}]},
	{"type":"function","name":"ipfsHash","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"isWithdrawn","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getPeakBalance","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"isPeakBalanceUpdated","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"donations","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"donate","stateMutability":"nonpayable","inputs":[{"name":"_amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"refund","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"updatePeakBalance","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"function","name":"syncIDRXDonations","stateMutability":"nonpayable","inputs":[],"outputs":[]}
]`

const erc20ABI = `[
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

const verificationBadgeABI = `[
	{"type":"function","name":"isVerified","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getBadgeInfo","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"verified","type":"bool"},{"name":"tokenId","type":"uint256"},{"name":"issuedAt","type":"uint256"}]}
]`

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("invalid ABI: " + err.Error())
	}
	return parsed
}

var (
	factoryABIParsed  = mustParseABI(campaignFactoryABI)
	campaignABIParsed = mustParseABI(campaignABI)
	erc20ABIParsed    = mustParseABI(erc20ABI)
	badgeABIParsed    = mustParseABI(verificationBadgeABI)
)
