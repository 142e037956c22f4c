package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lodastack/log"
	"github.com/lodastack/store/cluster"
	"github.com/vistack/dashboard/authorize"
	"github.com/vistack/dashboard/board"
	"github.com/vistack/dashboard/catalog"
	"github.com/vistack/dashboard/common"
	"github.com/vistack/dashboard/config"
	"github.com/vistack/dashboard/dataset"
	"github.com/vistack/dashboard/httpd"
	"github.com/vistack/dashboard/model"
	"github.com/vistack/dashboard/theme"
)

// Command line defaults
const (
	DefaultConfigFile = "/etc/dashboard/dashboard.conf"

	publishPeerDelay   = 1 * time.Second
	publishPeerTimeout = 60 * time.Second
	waitLeaderTimeout  = 10 * time.Second
)

// Command line parameters
var configFile string
var joinAddr string
var cpuProfile string
var memProfile string

// These variables are populated via the Go linker.
var (
	version   = "0"
	commit    = "unknown"
	branch    = "unknown"
	buildtime = "unknown"
)

func init() {
	flag.StringVar(&configFile, "config", DefaultConfigFile, "Set the config file")
	flag.StringVar(&joinAddr, "join", "", "Set the leader API addr to join a cluster")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to a file")
	flag.StringVar(&memProfile, "memprofile", "", "Write memory profile to a file")
}

// Main represents the program execution.
type Main struct {
	logger *log.Logger
}

// NewMain return a new instance of Main.
func NewMain() *Main {
	return &Main{
		logger: log.New(config.C.LogConf.Level, "main", model.LogBackend),
	}
}

func main() {
	flag.Parse()

	// Start requested profiling.
	startProfile(cpuProfile, memProfile)

	//parse config file
	err := config.ParseConfig(configFile)
	if err != nil {
		log.Errorf("Parse Config File Error : %v", err)
		os.Exit(1)
	}

	// init log backend
	err = initLog(config.C.LogConf.Dir, config.C.LogConf.Level, config.C.LogConf.Logrotatenum, config.C.LogConf.Logrotatesize)
	if err != nil {
		log.Errorf("failed to new log backend: %v", err)
		os.Exit(1)
	}

	m := NewMain()
	if err := m.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Start starts main dashboard service
func (m *Main) Start() error {

	m.logger.Printf("dashboard starting, version %s, branch %s, commit %s", version, branch, commit)

	// the static tables ship with the binary, refuse to start on a
	// hole rather than 500 on the first lookup.
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("dataset table broken: %v", err)
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("catalog table broken: %v", err)
	}

	//save pid to file, the container has no init watching it
	if !common.IsDocker() {
		err := ioutil.WriteFile(config.C.CommonConf.PID, []byte(strconv.Itoa(os.Getpid())), 0744)
		if err != nil {
			return fmt.Errorf("write PID file error: %v", err)
		}
	}

	// store config
	c := config.C.DataConf
	if joinAddr == "" {
		joinAddr = c.ClusterLeader
	}

	storeLogger := log.New(config.C.LogConf.Level, "store", model.LogBackend)
	opts := cluster.Options{
		Bind:     c.ClusterBind,
		DataDir:  c.Dir,
		JoinAddr: joinAddr,
		Logger:   storeLogger,
	}
	cs, err := cluster.NewService(opts)
	if err != nil {
		return fmt.Errorf("new store service failed: %v", err)
	}

	if err := cs.Open(); err != nil {
		return fmt.Errorf("failed to open cluster service: %v", err)
	}

	// If join was specified, make the join request.
	nodes, err := cs.Nodes()
	if err != nil {
		return fmt.Errorf("get nodes failed: %v", err)
	}

	// if exist a raftdb, or exist a cluster, don't join any leader.
	if joinAddr != "" && len(nodes) <= 1 {
		if err := cs.JoinCluster(joinAddr, c.ClusterBind); err != nil {
			return fmt.Errorf("failed to join node at %s: %v", joinAddr, err)
		}
	}

	// wait for leader
	l, err := cs.WaitForLeader(waitLeaderTimeout)
	if err != nil || l == "" {
		return fmt.Errorf("wait leader failed: %v", err)
	}
	m.logger.Printf("cluster leader is: %s", l)

	// update cluster meta
	if err := cs.PublishAPIAddr(config.C.CommonConf.HTTPBind, publishPeerDelay, publishPeerTimeout); err != nil {
		return fmt.Errorf("failed to set peer to [API:%s]: %s", config.C.CommonConf.HTTPBind, err.Error())
	}

	tm, err := theme.NewManager(theme.Mode(config.C.ThemeConf.Default))
	if err != nil {
		return fmt.Errorf("theme manager failed: %v", err)
	}

	perm, err := authorize.NewPerm(cs)
	if err != nil {
		return fmt.Errorf("init authorize failed: %v", err)
	}

	b, err := board.NewBoard(cs)
	if err != nil {
		return fmt.Errorf("init board failed: %v", err)
	}

	// Create and configure HTTP service.
	h := httpd.New(config.C.CommonConf.HTTPBind, cs, b, perm, tm)
	if err := h.Start(); err != nil {
		return fmt.Errorf("failed to start HTTP service: %v", err)
	}

	m.logger.Printf("dashboard started successfully")

	terminate := make(chan os.Signal, 1)
	signal.Notify(terminate, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	<-terminate
	stopProfile()

	// close HTTP service
	if err := h.Close(); err != nil {
		m.logger.Errorf("close HTTP failed: %v", err)
	}

	// close cluster service
	if err := cs.Close(); err != nil {
		m.logger.Errorf("close cluster service failed: %v", err)
	}

	if !common.IsDocker() {
		if err := os.Remove(config.C.CommonConf.PID); err != nil {
			m.logger.Errorf("clean PID file failed: %v", err)
		}
	}

	// flush log
	model.LogBackend.Flush()

	m.logger.Printf("dashboard exiting")
	return nil
}
