package common

import (
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"
)

var idNode *snowflake.Node

func init() {
	nodeID := cast.ToInt64(os.Getenv("DLC_NODE_ID"))
	if nodeID <= 0 || nodeID > 1023 {
		nodeID = 1
	}
	var err error
	idNode, err = snowflake.NewNode(nodeID)
	if err != nil {
		panic(err)
	}
}

// UUID returns a new opaque string identifier.
func UUID() string {
	return idNode.Generate().String()
}
