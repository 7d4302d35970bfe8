package main

import (
	"flag"
	"sync"

	"github.com/jeff-blank/svgwriter/pkg/config"
	"github.com/jeff-blank/svgwriter/pkg/scene"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

func main() {

	var wg sync.WaitGroup

	configFile := flag.String("conf", "svgwriter.yml", "configuration file")
	logDebug := flag.Bool("d", false, "debug-level logging")
	flag.Parse()

	if *logDebug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	cfg := config.New(*configFile)

	var src scene.PointSource
	if len(cfg.DbParam["type"]) > 0 {
		db, err := scene.Open(cfg.DbParam)
		if err != nil {
			log.Fatal("scene.Open(): ", err)
		}
		defer db.Close()
		src = db
	}

	for _, def := range cfg.Documents {
		wg.Add(1)
		go func(def config.DocumentDef) {
			defer wg.Done()

			doc, errlist := scene.Build(def, src)
			for _, errmsg := range errlist {
				log.Warnf("%s: %s", def.OutputFile, errmsg)
			}

			if err := writeDocument(cfg, def, doc.String()); err != nil {
				log.Errorf("%s: %v", def.OutputFile, err)
				return
			}
			log.Infof("wrote %s", def.OutputFile)
		}(def)
	}

	wg.Wait()
}
