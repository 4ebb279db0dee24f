package networks

// Multicall3 is deployed via a deterministic deployer so it lives at the
// same address on every chain that has it. https://github.com/mds1/multicall
const Multicall3Contract = "0xcA11bde05977b3631167028862bE2a173976CA11"
