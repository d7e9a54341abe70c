package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/auratech/finvault/internal/ledger"
)

// Export writes an unencrypted snapshot of the dataset to a JSON file in
// the working directory, named after today's date.
func (a *App) Export(ctx context.Context) error {
	filename, data, err := a.vaultSvc.Export(a.led.Dataset(), a.now())
	if err != nil {
		a.log.Error(ctx, "export failed", "error", err)
		return err
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		a.log.Error(ctx, "error writing export file", "error", err)
		return err
	}

	fmt.Printf("Exported to %s\n", filename)
	return a.persist(ctx, "exportación de datos")
}

// Import replaces the active dataset with a previously exported snapshot.
// An unparseable file leaves the current dataset untouched.
func (a *App) Import(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to snapshot file", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("Cannot read file.")
		return err
	}

	ds, err := a.vaultSvc.Import(data)
	if err != nil {
		fmt.Println("File is not a valid snapshot; keeping current data.")
		return err
	}

	a.led = ledger.New(ds)
	fmt.Println("Snapshot imported.")
	return a.persist(ctx, "importación de datos")
}
